package secret

import "errors"

// Secret validation errors
var (
	ErrEmptyKey   = errors.New("secret key cannot be empty")
	ErrEmptyValue = errors.New("secret value cannot be empty")
)
