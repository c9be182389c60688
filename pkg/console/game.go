package console

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-tetris/pkg/datastructs/queue"
	"github.com/huynhanx03/go-tetris/pkg/engine"
	"github.com/huynhanx03/go-tetris/pkg/piece"
)

// Command codes typed by the player.
const (
	CmdQuit        = 0
	CmdPlay        = 1
	CmdReserve     = 2
	CmdInsert      = 2 // classic variant only
	CmdUseReserved = 3
	CmdSwapFront   = 4
	CmdSwapBlock   = 5
)

var (
	// ErrInvalidOption is returned for codes the current game does not offer.
	ErrInvalidOption = errors.New("invalid option")
	// ErrQueueFull is returned by the classic game when inserting into a full queue.
	ErrQueueFull = errors.New("queue is full, play a piece first")
	// ErrQueueEmpty is returned by the classic game when playing from an empty queue.
	ErrQueueEmpty = errors.New("queue is empty, insert a piece first")
)

// Option is one menu entry.
type Option struct {
	Code  int
	Label string
}

// View is the state shown before every prompt.
type View struct {
	Queue      []piece.Piece // front to back
	Reserve    []piece.Piece // top to bottom
	HasReserve bool
}

// Game is the rule set a Session drives.
type Game interface {
	Intro() string
	Options() []Option
	// Execute applies the command and describes what happened.
	Execute(code int) (string, error)
	View() View
}

// ReserveGame exposes an engine. Swaps are only offered when enabled.
type ReserveGame struct {
	engine *engine.Engine
	swaps  bool
}

// NewReserveGame wraps e. With swaps set, commands 4 and 5 are available.
func NewReserveGame(e *engine.Engine, swaps bool) *ReserveGame {
	return &ReserveGame{engine: e, swaps: swaps}
}

func (g *ReserveGame) Intro() string {
	return fmt.Sprintf("Next-piece queue of %d with a reserve of %d.", engine.QueueCapacity, engine.ReserveCapacity)
}

func (g *ReserveGame) Options() []Option {
	opts := []Option{
		{CmdPlay, "Play piece"},
		{CmdReserve, "Reserve piece"},
		{CmdUseReserved, "Use reserved piece"},
	}
	if g.swaps {
		opts = append(opts,
			Option{CmdSwapFront, "Swap front piece with reserve top"},
			Option{CmdSwapBlock, fmt.Sprintf("Swap first %d pieces with the reserve", engine.BlockSize)},
		)
	}
	return opts
}

func (g *ReserveGame) Execute(code int) (string, error) {
	switch code {
	case CmdPlay:
		p := g.engine.PlayFront()
		return fmt.Sprintf("Played %s.", p), nil
	case CmdReserve:
		p, err := g.engine.ReserveFront()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Reserved %s.", p), nil
	case CmdUseReserved:
		p, err := g.engine.UseReserved()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Used reserved piece %s.", p), nil
	}

	if !g.swaps {
		return "", ErrInvalidOption
	}

	switch code {
	case CmdSwapFront:
		x, err := g.engine.SwapFront()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Swapped front %s with reserve top %s.", x.Queued, x.Reserve), nil
	case CmdSwapBlock:
		xs, err := g.engine.SwapBlock(engine.BlockSize)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Swapped %d pieces between queue and reserve.", len(xs)), nil
	}
	return "", ErrInvalidOption
}

func (g *ReserveGame) View() View {
	snap := g.engine.Snapshot()
	return View{Queue: snap.Queue, Reserve: snap.Reserve, HasReserve: true}
}

// classicQueue is the FIFO a ClassicGame plays from.
type classicQueue interface {
	queue.Queue[piece.Piece]
	IsFull() bool
	Items() []piece.Piece
}

// ClassicGame is the queue-only rule set: pieces are played from the front
// and inserted at the back independently, so the queue can run empty.
type ClassicGame struct {
	queue classicQueue
	src   engine.Source
}

// NewClassicGame creates a queue of the given capacity and fills it from src.
func NewClassicGame(src engine.Source, capacity int) *ClassicGame {
	g := &ClassicGame{
		queue: queue.NewBounded[piece.Piece](capacity),
		src:   src,
	}
	for !g.queue.IsFull() {
		g.queue.Enqueue(src.Next())
	}
	return g
}

func (g *ClassicGame) Intro() string {
	return fmt.Sprintf("Queue initialized with %d pieces.", g.queue.Capacity())
}

func (g *ClassicGame) Options() []Option {
	return []Option{
		{CmdPlay, "Play piece (dequeue)"},
		{CmdInsert, "Insert new piece (enqueue)"},
	}
}

func (g *ClassicGame) Execute(code int) (string, error) {
	switch code {
	case CmdPlay:
		p, ok := g.queue.Dequeue()
		if !ok {
			return "", ErrQueueEmpty
		}
		return fmt.Sprintf("Played %s.", p), nil
	case CmdInsert:
		// Checked first so that a rejected insert does not consume an id.
		if g.queue.IsFull() {
			return "", ErrQueueFull
		}
		p := g.src.Next()
		g.queue.Enqueue(p)
		return fmt.Sprintf("New piece %s added to the back of the queue.", p), nil
	}
	return "", ErrInvalidOption
}

func (g *ClassicGame) View() View {
	return View{Queue: g.queue.Items()}
}
