package ir

import "errors"

var (
	ErrNoSection        = errors.New("no section")
	ErrNoOption         = errors.New("no option")
	ErrDuplicateSection = errors.New("duplicate section")
	ErrDuplicateOption  = errors.New("duplicate option")
)
