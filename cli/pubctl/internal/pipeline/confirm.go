package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer guards an irreversible stage behind a human yes/no answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// LineConfirmer reads a single line from In and approves only when it equals
// "yes" case-insensitively. Anything else, including empty input and EOF,
// denies. The read is selected against ctx so an operator interrupt unblocks
// the gate.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
}

type answer struct {
	text string
	err  error
}

func (c LineConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprint(out, prompt)
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(c.In).ReadString('\n')
		ch <- answer{text: line, err: err}
	}()
	select {
	case <-ctx.Done():
		// The reader goroutine stays blocked on its read; the process is
		// tearing down at this point, so the leak is deliberate.
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && a.text == "" {
			// EOF without an answer denies.
			return false, nil
		}
		// Only the line terminator is stripped: padded answers like
		// "  yes  " deny, the same as any other non-"yes" input.
		return strings.EqualFold(strings.TrimRight(a.text, "\r\n"), "yes"), nil
	}
}
