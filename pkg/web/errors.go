package web

import "errors"

var (
	ErrInvalidView   = errors.New("invalid view definition")
	ErrDuplicatePath = errors.New("duplicate view path")
	ErrDuplicateName = errors.New("duplicate view name")
	ErrUnknownView   = errors.New("unknown view")
	ErrMissingParam  = errors.New("missing route parameter")
	ErrInvalidMode   = errors.New("invalid history mode")
)
