package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Server         Server        `yaml:"server"`
	Storage        Storage       `yaml:"storage"`
	Pg             Pg            `yaml:"pg"`
	Log            Log           `yaml:"log"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Storage struct {
	Driver         string `yaml:"driver"` // postgres or badger
	BadgerDir      string `yaml:"badger_dir"`
	MigrateOnStart bool   `yaml:"migrate_on_start"`
}

type Pg struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	User    string `yaml:"user"`
	Dbname  string `yaml:"dbname"`
	SSLMode string `yaml:"sslmode"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	PgPassword string `yaml:"pg_password"`
}

// env holds the values that may be overridden from FORUM_* variables.
type env struct {
	Addr          string `envconfig:"ADDR"`
	StorageDriver string `envconfig:"STORAGE_DRIVER"`
	BadgerDir     string `envconfig:"BADGER_DIR"`
	PgHost        string `envconfig:"PG_HOST"`
	PgPort        int    `envconfig:"PG_PORT"`
	PgPassword    string `envconfig:"PG_PASSWORD"`
	JwtKey        string `envconfig:"JWT_KEY"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

// New builds a config without reading files, for tools and tests.
func New(public Public, private Private) *Config {
	cfg := &Config{public, private}
	cfg.setDefaults()
	return cfg
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

// PgDSN builds a lib/pq connection string.
func (s *Config) PgDSN() string {
	sslMode := s.Public.Pg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		s.Public.Pg.Host, s.Public.Pg.Port, s.Public.Pg.User, s.private.PgPassword, s.Public.Pg.Dbname, sslMode)
}

// PgURL is the same connection in URL form, as golang-migrate expects it.
func (s *Config) PgURL() string {
	sslMode := s.Public.Pg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		s.Public.Pg.User, s.private.PgPassword, s.Public.Pg.Host, s.Public.Pg.Port, s.Public.Pg.Dbname, sslMode)
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	mustLoadOptionalPath(configPath, output)
}

// mustLoadOptionalPath leaves output untouched when the file is absent.
func mustLoadOptionalPath(configPath string, output interface{}) {
	configFile, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	// private.yaml is optional: secrets may come from FORUM_* variables alone.
	var private Private
	mustLoadOptionalPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := cfg.applyEnv(); err != nil {
		panic(err.Error())
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (s *Config) applyEnv() error {
	var e env
	if err := envconfig.Process("FORUM", &e); err != nil {
		return fmt.Errorf("can't read environment: %w", err)
	}
	override(&s.Public.Server.Addr, e.Addr)
	override(&s.Public.Storage.Driver, e.StorageDriver)
	override(&s.Public.Storage.BadgerDir, e.BadgerDir)
	override(&s.Public.Pg.Host, e.PgHost)
	override(&s.private.PgPassword, e.PgPassword)
	override(&s.private.JwtKey, e.JwtKey)
	override(&s.Public.Log.Level, e.LogLevel)
	if e.PgPort != 0 {
		s.Public.Pg.Port = e.PgPort
	}
	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (s *Config) setDefaults() {
	if s.Public.Server.Addr == "" {
		s.Public.Server.Addr = ":5000"
	}
	if s.Public.Server.ShutdownTimeout == 0 {
		s.Public.Server.ShutdownTimeout = 10 * time.Second
	}
	if s.Public.Storage.Driver == "" {
		s.Public.Storage.Driver = DriverPostgres
	}
	if s.Public.JwtTTL == 0 {
		s.Public.JwtTTL = 3 * time.Hour
	}
	if s.Public.Log.Level == "" {
		s.Public.Log.Level = "info"
	}
}

func (s *Config) validate() error {
	if s.private.JwtKey == "" {
		return fmt.Errorf("jwt_key is required")
	}
	switch s.Public.Storage.Driver {
	case DriverPostgres:
		if s.Public.Pg.Host == "" || s.Public.Pg.Dbname == "" {
			return fmt.Errorf("pg host and dbname are required for the postgres driver")
		}
	case DriverBadger:
		if s.Public.Storage.BadgerDir == "" {
			return fmt.Errorf("badger_dir is required for the badger driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", s.Public.Storage.Driver)
	}
	return nil
}
