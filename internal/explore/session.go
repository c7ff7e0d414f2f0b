// Package explore answers "which ranges hold these combos" one line at a time
package explore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"headsup-analyzer/pkg/rangestore"
)

const separator = "================================================"

// Session reads queries from in and writes the matching range names to out
type Session struct {
	store  *rangestore.Store
	in     io.Reader
	out    io.Writer
	prompt bool
}

// NewSession returns a new session
// The prompt is only shown when in is a terminal.
func NewSession(store *rangestore.Store, in io.Reader, out io.Writer) *Session {
	prompt := false
	if f, ok := in.(*os.File); ok {
		prompt = term.IsTerminal(int(f.Fd()))
	}

	return &Session{
		store:  store,
		in:     in,
		out:    out,
		prompt: prompt,
	}
}

// Run processes lines until "exit", end of input or the context is done
// Bad lines are reported and skipped. A cancelled context returns while a read is pending;
// the reader goroutine then stops once in delivers more input or is closed.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.readLines(ctx, lines, readErr)

	s.println("input below.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.prompt {
			s.println(separator)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case line = <-lines:
		}

		q, err := ParseQuery(line)
		if err != nil {
			if !errors.Is(err, ErrEmptyQuery) {
				logrus.WithError(err).Debug("bad query")
				s.println(pterm.Error.Sprint(err.Error()))
			}
			continue
		}

		if q.Exit {
			return nil
		}

		s.answer(q)
	}
}

// readLines sends each line of input to lines, then the scanner error (nil at EOF) to readErr
func (s *Session) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	readErr <- scanner.Err()
}

func (s *Session) answer(q *Query) {
	matches := s.store.MatchingRanges(q.Combos, q.Position)
	if len(matches) == 0 {
		s.println(pterm.Warning.Sprint("no matching ranges"))
		return
	}

	for _, p := range matches {
		s.println(fmt.Sprintf("%s  %s", pterm.LightGreen(p.Name), pterm.Gray(p.Key().String())))
	}
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
