// Package common defines shared constants and sentinel errors used across
// the server, transport and client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

// Repository-level errors.
var (
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
