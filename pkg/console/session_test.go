package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/huynhanx03/go-tetris/pkg/datastructs/queue"
	"github.com/huynhanx03/go-tetris/pkg/engine"
	"github.com/huynhanx03/go-tetris/pkg/piece"
	"github.com/huynhanx03/go-tetris/pkg/unique"
)

func newGenerator() *piece.Generator {
	return piece.NewGenerator(piece.Classic, piece.WithSeed(3), piece.WithSequence(unique.NewSequence()))
}

func newReserveGame(swaps bool) *ReserveGame {
	return NewReserveGame(engine.New(newGenerator()), swaps)
}

// run plays the scripted input and returns everything written.
func run(t *testing.T, g Game, input string, opts ...SessionOption) string {
	t.Helper()
	var out bytes.Buffer
	err := NewSession(g, strings.NewReader(input), &out, opts...).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

// =============================================================================
// Rendering
// =============================================================================

func TestSession_RendersState(t *testing.T) {
	g := newReserveGame(true)
	queue := g.View().Queue

	out := run(t, g, "0\n")

	assert.Contains(t, out, "Next-piece queue of 5 with a reserve of 3.")
	var row []string
	for _, p := range queue {
		row = append(row, p.String())
	}
	assert.Contains(t, out, "Next pieces:   "+strings.Join(row, " "))
	assert.Contains(t, out, "Reserve (top): (empty)")
	assert.Contains(t, out, "5. Swap first 3 pieces with the reserve")
	assert.Contains(t, out, "0. Quit")
	assert.Contains(t, out, "Exiting game...")
}

func TestSession_PlainTextForNonTerminal(t *testing.T) {
	out := run(t, newReserveGame(true), "1\n0\n")
	assert.NotContains(t, out, "\x1b[", "no escape sequences expected when writing to a buffer")
}

// =============================================================================
// Reserve and swap variants
// =============================================================================

func TestSession_ReserveUntilFull(t *testing.T) {
	out := run(t, newReserveGame(true), "2\n2\n2\n2\n0\n")

	assert.Equal(t, 3, strings.Count(out, "Reserved ["))
	assert.Contains(t, out, "Action failed: "+engine.ErrReserveFull.Error())
}

func TestSession_UseReservedEmpty(t *testing.T) {
	out := run(t, newReserveGame(false), "3\n0\n")
	assert.Contains(t, out, "Action failed: "+engine.ErrReserveEmpty.Error())
}

func TestSession_ReserveThenUse(t *testing.T) {
	g := newReserveGame(false)
	front := g.View().Queue[0]

	out := run(t, g, "2\n3\n0\n")

	assert.Contains(t, out, "Reserved "+front.String()+".")
	assert.Contains(t, out, "Reserve (top): "+front.String())
	assert.Contains(t, out, "Used reserved piece "+front.String()+".")
}

func TestSession_SwapFront(t *testing.T) {
	out := run(t, newReserveGame(true), "4\n2\n4\n0\n")

	assert.Contains(t, out, "Action failed: "+engine.ErrReserveEmpty.Error())
	assert.Contains(t, out, "Swapped front [")
}

func TestSession_SwapBlock(t *testing.T) {
	out := run(t, newReserveGame(true), "5\n2\n2\n2\n5\n0\n")

	assert.Contains(t, out, "Action failed: "+engine.ErrReserveNotFull.Error())
	assert.Contains(t, out, "Swapped 3 pieces between queue and reserve.")
}

func TestSession_ReserveVariantHidesSwaps(t *testing.T) {
	out := run(t, newReserveGame(false), "4\n5\n0\n")

	assert.NotContains(t, out, "4. Swap")
	assert.Equal(t, 2, strings.Count(out, "Action failed: invalid option"))
}

// =============================================================================
// Classic variant
// =============================================================================

func TestSession_Classic(t *testing.T) {
	g := NewClassicGame(newGenerator(), 5)

	out := run(t, g, "2\n1\n1\n1\n1\n1\n1\n2\n0\n")

	assert.Contains(t, out, "Queue initialized with 5 pieces.")
	assert.Contains(t, out, "2. Insert new piece (enqueue)")
	assert.NotContains(t, out, "Reserve (top):")
	assert.Contains(t, out, "Action failed: "+ErrQueueFull.Error())
	assert.Equal(t, 5, strings.Count(out, "Played ["))
	assert.Contains(t, out, "Action failed: "+ErrQueueEmpty.Error())
	assert.Contains(t, out, "Next pieces:   (empty)")
	// The rejected insert did not consume an id.
	assert.Contains(t, out, " 5] added to the back of the queue.")
}

func TestClassicGame_UnknownCommand(t *testing.T) {
	g := NewClassicGame(newGenerator(), 5)
	for _, code := range []int{3, 4, 5, -1} {
		_, err := g.Execute(code)
		assert.True(t, errors.Is(err, ErrInvalidOption), "code %d", code)
	}
}

func TestClassicGame_QueueInterface(t *testing.T) {
	var _ classicQueue = (*queue.Bounded[piece.Piece])(nil)

	g := &ClassicGame{queue: queue.NewBounded[piece.Piece](1), src: newGenerator()}
	assert.Equal(t, "Queue initialized with 1 pieces.", g.Intro())

	_, err := g.Execute(CmdPlay)
	assert.True(t, errors.Is(err, ErrQueueEmpty))

	msg, err := g.Execute(CmdInsert)
	require.NoError(t, err)
	assert.Equal(t, "New piece "+g.View().Queue[0].String()+" added to the back of the queue.", msg)

	_, err = g.Execute(CmdInsert)
	assert.True(t, errors.Is(err, ErrQueueFull))
}

// =============================================================================
// Input handling
// =============================================================================

func TestSession_InvalidInput(t *testing.T) {
	out := run(t, newReserveGame(true), "x\n\n9\n0\n")
	assert.Equal(t, 3, strings.Count(out, "Action failed: invalid option"))
}

func TestSession_OversizedLineIsInvalid(t *testing.T) {
	input := strings.Repeat("9", 70000) + "\n1\n0\n"
	out := run(t, newReserveGame(true), input)

	assert.Equal(t, 1, strings.Count(out, "Action failed: invalid option"))
	assert.Contains(t, out, "Played [")
	assert.Contains(t, out, "Exiting game...")
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	out := run(t, newReserveGame(true), "1\n0")
	assert.Contains(t, out, "Played [")
	assert.NotContains(t, out, "Action failed")
}

func TestSession_EOFQuits(t *testing.T) {
	out := run(t, newReserveGame(true), "1\n")
	assert.Contains(t, out, "Played [")
	assert.Contains(t, out, "Exiting game...")
}

func TestSession_ReadError(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newReserveGame(true), iotest.ErrReader(errors.New("tty gone")), &out)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestSession_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewSession(newReserveGame(true), strings.NewReader("1\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "Played")
}

func TestSession_LogsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	run(t, newReserveGame(true), "3\nabc\n0\n", WithLogger(zap.New(core)))

	rejected := logs.FilterMessage("command rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, int64(engine.CodeReserveEmpty), rejected[0].ContextMap()["error_code"])
	assert.Equal(t, 1, logs.FilterMessage("unparsable command").Len())
	assert.Equal(t, 1, logs.FilterMessage("player quit").Len())
}
