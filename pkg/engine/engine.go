// Package engine couples the always-full next-piece queue with the bounded
// reserve stack and implements the moves and swaps between them.
package engine

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-tetris/pkg/common/apperr"
	"github.com/huynhanx03/go-tetris/pkg/datastructs/ring"
	"github.com/huynhanx03/go-tetris/pkg/datastructs/stack"
	"github.com/huynhanx03/go-tetris/pkg/piece"
)

const (
	// QueueCapacity is the number of upcoming pieces shown to the player.
	QueueCapacity = 5
	// ReserveCapacity is the number of pieces that can be held back.
	ReserveCapacity = 3
	// BlockSize is the number of pairs exchanged by a block swap.
	BlockSize = 3
)

// Source produces the pieces that refill the queue.
type Source interface {
	Next() piece.Piece
}

// Exchange records one pairwise swap between a queue slot and a reserve slot.
// Offset is front-relative in the queue and top-relative in the reserve.
type Exchange struct {
	Offset  int
	Queued  piece.Piece // moved from the queue into the reserve
	Reserve piece.Piece // moved from the reserve into the queue
}

// Snapshot is a read-only copy of the full game state.
type Snapshot struct {
	Queue   []piece.Piece // front to back
	Reserve []piece.Piece // top to bottom
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine owns one next-piece queue and one reserve. It has no state of its
// own beyond the two containers: every operation validates against them
// before mutating anything, so a failed call leaves both untouched.
type Engine struct {
	queue   *ring.Full[piece.Piece]
	reserve *stack.Bounded[piece.Piece]
	log     *zap.Logger
}

// New creates an engine whose queue is pre-filled from src and whose reserve
// is empty.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{
		queue:   ring.NewFull(QueueCapacity, src.Next),
		reserve: stack.New[piece.Piece](ReserveCapacity),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.Debug("engine initialized", zap.Stringers("queue", e.queue.Items()))
	return e
}

// PlayFront consumes the front piece. The queue is refilled at the back.
func (e *Engine) PlayFront() piece.Piece {
	p := e.queue.Shift()
	e.log.Debug("played front", zap.Stringer("piece", p), zap.Stringer("next", e.queue.At(QueueCapacity-1)))
	return p
}

// ReserveFront moves the front piece onto the reserve.
func (e *Engine) ReserveFront() (piece.Piece, error) {
	if e.reserve.IsFull() {
		e.log.Debug("reserve rejected", zap.Error(ErrReserveFull))
		return piece.Piece{}, ErrReserveFull
	}

	if err := e.reserve.Push(e.queue.Front()); err != nil {
		return piece.Piece{}, internal(err, apperr.MsgPushFailed)
	}
	p := e.queue.Shift()
	e.log.Debug("reserved front", zap.Stringer("piece", p), zap.Int("reserved", e.reserve.Len()))
	return p, nil
}

// UseReserved consumes the top of the reserve. The queue is not touched.
func (e *Engine) UseReserved() (piece.Piece, error) {
	if e.reserve.IsEmpty() {
		e.log.Debug("use reserved rejected", zap.Error(ErrReserveEmpty))
		return piece.Piece{}, ErrReserveEmpty
	}

	p, err := e.reserve.Pop()
	if err != nil {
		return piece.Piece{}, internal(err, apperr.MsgPopFailed)
	}
	e.log.Debug("used reserved", zap.Stringer("piece", p), zap.Int("reserved", e.reserve.Len()))
	return p, nil
}

// SwapFront exchanges the queue front with the reserve top in place. Both
// containers keep their size.
func (e *Engine) SwapFront() (Exchange, error) {
	if e.reserve.IsEmpty() {
		e.log.Debug("swap rejected", zap.Error(ErrReserveEmpty))
		return Exchange{}, ErrReserveEmpty
	}

	x := e.exchange(0)
	e.log.Debug("swapped front", zap.Stringer("queued", x.Queued), zap.Stringer("reserve", x.Reserve))
	return x, nil
}

// SwapBlock exchanges the first k queue slots with the top k reserve slots,
// pairwise: front with top, front+1 with top-1, and so on. The reserve must
// be full.
func (e *Engine) SwapBlock(k int) ([]Exchange, error) {
	if k < 1 || k > min(e.queue.Cap(), e.reserve.Cap()) {
		e.log.Debug("block swap rejected", zap.Int("k", k), zap.Error(ErrInvalidBlock))
		return nil, ErrInvalidBlock
	}
	if !e.reserve.IsFull() {
		e.log.Debug("block swap rejected", zap.Int("reserved", e.reserve.Len()), zap.Error(ErrReserveNotFull))
		return nil, ErrReserveNotFull
	}

	out := make([]Exchange, k)
	for i := range out {
		out[i] = e.exchange(i)
	}
	e.log.Debug("swapped block", zap.Int("k", k))
	return out, nil
}

// Snapshot returns copies of the queue (front to back) and the reserve
// (top to bottom).
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Queue:   e.queue.Items(),
		Reserve: e.reserve.Items(),
	}
}

// ReserveFull reports whether ReserveFront would be rejected.
func (e *Engine) ReserveFull() bool { return e.reserve.IsFull() }

// ReserveEmpty reports whether UseReserved and SwapFront would be rejected.
func (e *Engine) ReserveEmpty() bool { return e.reserve.IsEmpty() }

// exchange swaps queue offset i with reserve depth i. Callers have already
// checked that both positions hold pieces.
func (e *Engine) exchange(i int) Exchange {
	queued := e.queue.At(i)
	reserved := e.reserve.Replace(i, queued)
	e.queue.Replace(i, reserved)
	return Exchange{Offset: i, Queued: queued, Reserve: reserved}
}
