package parser

import "errors"

var (
	ErrInvalidIdentifierStart = errors.New("identifier must start with a letter or '_'")
	ErrInvalidName            = errors.New("name may only contain letters, digits, '_', '-' or '?'")
	ErrUnclosedList           = errors.New("unclosed list")
	ErrVoidList               = errors.New("void can not be attached to a list")
	ErrUnknownLanguage        = errors.New("unknown language")
	ErrDuplicateField         = errors.New("duplicate field")
	ErrDuplicateParameter     = errors.New("duplicate parameter")
	ErrDuplicateVariant       = errors.New("duplicate variant")
	ErrDuplicateFunction      = errors.New("duplicate function")
	ErrUnexpected             = errors.New("unexpected value")
)
