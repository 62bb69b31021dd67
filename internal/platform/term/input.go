package term

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/termsnake/internal/core"
)

// Input turns decoded key names from a reader goroutine into actions.
type Input struct {
	keys   <-chan string
	errs   <-chan error
	keymap core.KeyMap
}

// NewInput creates an input source fed by keys and errs.
func NewInput(keys <-chan string, errs <-chan error, km core.KeyMap) *Input {
	return &Input{keys: keys, errs: errs, keymap: km}
}

// Poll waits up to timeout for one key.
func (in *Input) Poll(ctx context.Context, timeout time.Duration) (core.Action, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return core.ActionNone, ctx.Err()
	case k := <-in.keys:
		return in.keymap.Lookup(k), nil
	case err := <-in.errs:
		return core.ActionNone, fmt.Errorf("read stdin: %w", err)
	case <-timer.C:
		return core.ActionNone, nil
	}
}

// keyReader owns the goroutine running readKeys. Reading through a
// cancelreader lets Stop unblock a pending read of stdin.
type keyReader struct {
	r       cancelreader.CancelReader
	done    chan struct{}
	stopped chan struct{}
}

func startKeyReader(r cancelreader.CancelReader, keys chan<- string, errs chan<- error) *keyReader {
	kr := &keyReader{
		r:       r,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(kr.stopped)
		readKeys(r, keys, errs, kr.done)
	}()
	return kr
}

// Stop cancels the pending read and waits for the goroutine to exit.
// It returns false when the platform cannot cancel the read; the goroutine
// then exits after the next key arrives.
func (kr *keyReader) Stop() bool {
	close(kr.done)
	if !kr.r.Cancel() {
		return false
	}
	<-kr.stopped
	_ = kr.r.Close()
	return true
}

// readKeys is the only goroutine touching r. It forwards key names until a
// read fails (a cancelled read included) or done is closed while a key is
// waiting to be delivered.
func readKeys(r io.Reader, keys chan<- string, errs chan<- error, done <-chan struct{}) {
	var buf [64]byte
	for {
		n, err := r.Read(buf[:])
		for _, k := range DecodeKeys(buf[:n]) {
			select {
			case keys <- k:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case errs <- err:
			case <-done:
			}
			return
		}
	}
}
