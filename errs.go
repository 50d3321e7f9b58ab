package ini

import (
	"errors"

	"github.com/signadot/ini-format/ini/ir"
	"github.com/signadot/ini-format/ini/parse"
)

// ErrNoConfigFile is returned by UpdateFile when no file was read first.
var ErrNoConfigFile = errors.New("no configuration file was read; use ReadFile first")

// Subpackage sentinels, re-exported for callers that only import the
// facade.
var (
	ErrNoSection            = ir.ErrNoSection
	ErrNoOption             = ir.ErrNoOption
	ErrDuplicateSection     = ir.ErrDuplicateSection
	ErrDuplicateOption      = ir.ErrDuplicateOption
	ErrParse                = parse.ErrParse
	ErrMissingSectionHeader = parse.ErrMissingSectionHeader
)
