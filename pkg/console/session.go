// Package console is the text front end: it renders the queue and reserve,
// reads numbered commands and reports their outcome.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-tetris/pkg/common/apperr"
)

// errLineTooLong reports an input line that does not fit the read buffer.
var errLineTooLong = errors.New("input line too long")

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used to trace commands.
func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session runs the read-execute-render loop for one game.
type Session struct {
	game Game
	in   *bufio.Reader
	out  io.Writer
	r    *renderer
	log  *zap.Logger
}

// NewSession creates a session that reads commands from in and writes to out.
func NewSession(game Game, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		game: game,
		in:   bufio.NewReader(in),
		out:  out,
		r:    newRenderer(out),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands one at a time until the player quits, input ends
// or ctx is cancelled. Quitting and end of input are not errors.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, s.r.title.Render(s.game.Intro()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out)
		s.r.view(s.out, s.game.View())
		s.r.menu(s.out, s.game.Options())

		line, err := s.readLine()
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			s.log.Info("input closed")
			fmt.Fprintln(s.out, "Exiting game...")
			return nil
		case errors.Is(err, errLineTooLong):
			s.log.Debug("oversized command discarded")
			s.r.failure(s.out, ErrInvalidOption)
			continue
		case err != nil:
			fmt.Fprintln(s.out)
			return errors.Wrap(err, "failed to read command")
		}

		code, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.log.Debug("unparsable command", zap.String("input", line))
			s.r.failure(s.out, ErrInvalidOption)
			continue
		}
		if code == CmdQuit {
			s.log.Info("player quit")
			fmt.Fprintln(s.out, "Exiting game...")
			return nil
		}

		msg, err := s.game.Execute(code)
		if err != nil {
			fields := []zap.Field{zap.Int("code", code), zap.Error(err)}
			if errCode, ok := apperr.CodeOf(err); ok {
				fields = append(fields, zap.Int("error_code", errCode))
			}
			s.log.Debug("command rejected", fields...)
			s.r.failure(s.out, err)
			continue
		}
		s.log.Debug("command applied", zap.Int("code", code), zap.String("outcome", msg))
		s.r.success(s.out, msg)
	}
}

// readLine returns the next line without its terminator. A line longer than
// the reader's buffer is drained and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	line, isPrefix, err := s.in.ReadLine()
	if err != nil {
		return "", err
	}
	if !isPrefix {
		return string(line), nil
	}
	for isPrefix {
		if _, isPrefix, err = s.in.ReadLine(); err != nil {
			break
		}
	}
	return "", errLineTooLong
}
