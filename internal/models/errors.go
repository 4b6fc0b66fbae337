package models

import "errors"

// ErrInvalidPayload indicates that an action payload does not match
// the shape required by its kind.
var ErrInvalidPayload = errors.New("invalid action payload")
