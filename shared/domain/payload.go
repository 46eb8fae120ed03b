package domain

import (
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// requireStrings checks that every key is present and then that every key holds a string.
// Presence is checked for all keys first, so a payload that is both incomplete and
// mistyped reports the missing field.
func requireStrings(p Payload, entity string, keys ...string) ([]string, error) {
	for _, key := range keys {
		if isMissing(p[key]) {
			return nil, &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.MissingField, Field: key}
		}
	}

	values := make([]string, len(keys))
	for i, key := range keys {
		s, ok := p[key].(string)
		if !ok {
			return nil, &internal_errors.ValidationError{Entity: entity, Kind: internal_errors.WrongType, Field: key}
		}
		values[i] = s
	}
	return values, nil
}

func isMissing(v any) bool {
	return v == nil || v == ""
}
