package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/Garik-/midiread/pkg/midi"
	"go.uber.org/zap"
)

// stdinName stands for standard input in the list of inputs.
const stdinName = "-"

type result struct {
	index   int
	name    string
	decoder *midi.Decoder
	err     error
}

// failed reports whether the file or any of its tracks could not be decoded.
func (r *result) failed() bool {
	if r.err != nil {
		return true
	}
	for _, t := range r.decoder.Tracks {
		if t.Err != nil {
			return true
		}
	}
	return false
}

func decodeFile(ctx context.Context, name string, opts ...midi.Option) *result {
	out := &result{name: name}

	var r io.Reader = os.Stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			out.err = err
			return out
		}
		defer f.Close()
		r = bufio.NewReader(f)
	}

	opts = append(opts, midi.WithLogger(decoderLog.With(zap.String("file", name))))
	out.decoder = midi.NewDecoder(r, opts...)
	out.err = out.decoder.Decode(ctx)
	return out
}

func readList(ctx context.Context, names []string) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)
		for _, name := range names {
			select {
			case out <- name:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// decodeWorker decodes at most cntRoutines files at a time. Results arrive
// in completion order; index records the input order.
func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int, opts ...midi.Option) (<-chan *result, <-chan struct{}) {
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)
		index := 0

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				decoderLog.Debug("decodeWorker context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, index int, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				r := decodeFile(ctx, path, opts...)
				r.index = index

				select {
				case out <- r:
				case <-ctx.Done():
					decoderLog.Debug("decodeFile context done", zap.String("file", path))
				}
				<-goroutines

			}(ctx, index, path, goroutines, out, &wg)
			index++
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}

// inOrder calls fn for every result in input order, holding back results
// that finish early.
func inOrder(results <-chan *result, fn func(*result)) {
	pending := make(map[int]*result)
	next := 0

	for r := range results {
		pending[r.index] = r
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			fn(r)
			next++
		}
	}
}

// forEachFile decodes names through decodeWorker and hands the results to fn
// in input order.
func forEachFile(parent context.Context, names []string, jobs int, opts []midi.Option, fn func(*result)) {
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, readList(ctx, names), jobs, opts...)

	defer func() {
		cancel()
		<-done // wait decodeWorker closed
	}()

	inOrder(results, fn)
}
