package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

type inputResult struct {
	text string
	err  error
}

// lineReader reads lines on a background goroutine so a blocked read never
// prevents the caller from observing context cancellation.
type lineReader struct {
	reader *bufio.Reader
	lines  chan inputResult
	once   sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (l *lineReader) pump() {
	defer close(l.lines)
	for {
		text, err := l.reader.ReadString('\n')
		// A final line without a newline is still delivered.
		if text != "" {
			l.lines <- inputResult{text: text}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				l.lines <- inputResult{err: err}
			}
			return
		}
	}
}

// Next returns the next raw line, io.EOF once the stream is drained, or the
// context error.
func (l *lineReader) Next(ctx context.Context) (string, error) {
	l.once.Do(func() {
		l.lines = make(chan inputResult)
		go l.pump()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
