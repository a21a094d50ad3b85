package view

import "errors"

var (
	ErrParsingTemplate   = errors.New("error parsing template")
	ErrExecutingTemplate = errors.New("error executing template")
	ErrUnknownPage       = errors.New("unknown page")
)
