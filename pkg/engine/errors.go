package engine

import "github.com/huynhanx03/go-tetris/pkg/common/apperr"

const component = "engine"

// Failure codes carried by engine errors.
const (
	CodeInternal = iota + 1
	CodeReserveFull
	CodeReserveEmpty
	CodeReserveNotFull
	CodeInvalidBlock
)

// Expected, recoverable outcomes. A call failing with one of these has not
// mutated the queue or the reserve.
var (
	ErrReserveFull    = apperr.New(CodeReserveFull, "reserve is full", nil)
	ErrReserveEmpty   = apperr.New(CodeReserveEmpty, "reserve is empty", nil)
	ErrReserveNotFull = apperr.New(CodeReserveNotFull, "reserve must be full to swap a block", nil)
	ErrInvalidBlock   = apperr.New(CodeInvalidBlock, "block size out of range", nil)
)

// internal maps a container failure that slipped past the engine's own
// checks.
func internal(err error, msg string) error {
	return apperr.MapError(component, err, CodeInternal, msg)
}
