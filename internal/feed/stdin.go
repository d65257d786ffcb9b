package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// Stdin mirrors lines from standard input onto the console. Pipe any
// program into it to watch real output land on the display.
type Stdin struct {
	r io.Reader // defaults to os.Stdin
}

// NewStdin creates a source reading from standard input.
func NewStdin() *Stdin {
	return &Stdin{}
}

// ID returns the unique identifier for this source.
func (s *Stdin) ID() string {
	return "stdin"
}

// Title returns the display name for this source.
func (s *Stdin) Title() string {
	return "Stdin Mirror"
}

// Run copies input lines to the console until EOF or cancellation.
// A read blocked on a quiet stdin cannot be interrupted portably, so
// the reader goroutine may outlive a cancelled Run.
func (s *Stdin) Run(ctx context.Context, con Console) error {
	r := s.r
	if r == nil {
		r = os.Stdin
	}

	sc := bufio.NewScanner(r)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("feed: cannot read input: %w", err)
				}
				return nil
			}
			con.Println(line)
		}
	}
}

// Register the source with the registry
func init() {
	Register("stdin", func() Source {
		return NewStdin()
	})
}
