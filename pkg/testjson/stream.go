package testjson

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds a single event line; verbose test output can be large.
const maxLineSize = 1024 * 1024

// scanned is one line from the reader, or the error that stopped it.
type scanned struct {
	n    int // 1-based line number
	line []byte
	err  error
}

// Stream parses go test -json events line by line and calls fn for each one,
// in arrival order. It stops on EOF or when ctx is cancelled, and returns the
// number of malformed lines skipped. A read error, including a line longer
// than 1 MiB, is returned with the number of the line it occurred on; events
// before it have already been delivered.
//
// On cancel, Stream closes r if it implements io.Closer to unblock the
// reading goroutine; otherwise the caller must close the underlying reader.
func Stream(ctx context.Context, r io.Reader, fn ProcessFunc) (int, error) {
	lines := make(chan scanned)
	go scan(ctx, r, lines)

	var malformed int
	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return malformed, ctx.Err()
		case s, ok := <-lines:
			if !ok {
				return malformed, nil
			}
			if s.err != nil {
				return malformed, fmt.Errorf("line %d: %w", s.n, s.err)
			}
			if len(s.line) == 0 {
				continue
			}
			var event TestEvent
			if err := json.Unmarshal(s.line, &event); err != nil {
				malformed++
				continue
			}
			fn(event)
		}
	}
}

func scan(ctx context.Context, r io.Reader, out chan<- scanned) {
	defer close(out)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	send := func(s scanned) bool {
		select {
		case out <- s:
			return true
		case <-ctx.Done():
			return false
		}
	}
	for scanner.Scan() {
		n++
		// scanner reuses its buffer
		if !send(scanned{n: n, line: append([]byte(nil), scanner.Bytes()...)}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		send(scanned{n: n + 1, err: err})
	}
}
