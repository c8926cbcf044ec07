package fontopts

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// strictContracts makes contract violations panic instead of only logging.
var strictContracts atomic.Bool

func init() {
	strictContracts.Store(debugBuild)
}

// SetStrictContracts controls whether contract violations panic.
//
// Strict mode starts enabled in binaries built with the fontdebug tag and
// disabled otherwise. Either way a violation is logged at
// [slog.LevelWarn] through [Logger] first.
func SetStrictContracts(strict bool) {
	strictContracts.Store(strict)
}

// StrictContracts reports whether contract violations currently panic.
func StrictContracts() bool {
	return strictContracts.Load()
}

// ContractError is the panic value raised for a contract violation in
// strict mode.
type ContractError struct {
	Op  string // method that was called, e.g. "WithHeight"
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("fontopts: %s: %s", e.Op, e.Msg)
}

// contractViolation reports a programmer error in a call to op.
// The caller returns its documented fallback value afterwards.
func contractViolation(op, msg string, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("op", op))
	for _, a := range attrs {
		args = append(args, a)
	}
	Logger().Warn("fontopts: contract violation: "+msg, args...)

	if strictContracts.Load() {
		panic(&ContractError{Op: op, Msg: msg})
	}
}
