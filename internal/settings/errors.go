package settings

import "errors"

var (
	ErrIncompatibleVersion = errors.New("incompatible settings version")
	ErrNotFound            = errors.New("scheme not found")
	ErrEmptyName           = errors.New("scheme name is empty")
)
