package comm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/modhaven/minemod/host"
)

// TermDialogs asks blocking questions on the terminal: numbered
// choices, read a number back. A wrong entry just asks again, matching
// the host's modal dialogs which stay up until an option is picked.
type TermDialogs struct {
	In  io.Reader
	Out io.Writer
}

var _ host.Dialogs = (*TermDialogs)(nil)

func NewTermDialogs() *TermDialogs {
	return &TermDialogs{
		In:  os.Stdin,
		Out: os.Stdout,
	}
}

func (d *TermDialogs) Ask(q host.Question) (host.Decision, error) {
	fmt.Fprintf(d.Out, "\n%s\n%s\n", q.Title, q.Body)
	for i, c := range q.Choices {
		fmt.Fprintf(d.Out, "  [%d] %s\n", i+1, c.Label)
	}

	scanner := bufio.NewScanner(d.In)
	for {
		fmt.Fprintf(d.Out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", errors.WithStack(err)
			}
			return "", errors.New("input closed before a choice was made")
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(q.Choices) {
			return host.Decision(q.Choices[n-1].ID), nil
		}
		fmt.Fprintf(d.Out, "pick a number between 1 and %d\n", len(q.Choices))
	}
}
