package patcher

import (
	"bufio"
	"io"

	"github.com/itchio/headway/state"
)

// newLogWriter returns an io.Writer that relays every line written to
// it to the consumer, warnings for the "err" stream, info otherwise.
func newLogWriter(consumer *state.Consumer, prefix string) io.Writer {
	pr, pw := io.Pipe()

	go func() {
		// bufio.Scanner error conditions don't matter much here,
		// we're only relaying log lines.
		s := bufio.NewScanner(pr)

		for s.Scan() {
			if prefix == "err" {
				consumer.Warnf("[%s] %s", prefix, s.Text())
			} else {
				consumer.Infof("[%s] %s", prefix, s.Text())
			}
		}
	}()

	return pw
}
