package main

import (
	"os"

	"github.com/itchan-dev/forum/shared/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
