package midi

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Decoder reads a whole Standard MIDI File: the header chunk, every track
// chunk, and any unknown chunk, which is kept but not inspected.
type Decoder struct {
	r    io.Reader
	opts options
	log  *zap.Logger

	Header Header
	Chunks []*Chunk
	Tracks []*Track
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := newOptions(opts)
	return &Decoder{r: r, opts: o, log: o.log.Named("decoder")}
}

// Decode reads the input to its end and decodes every track. A fatal error
// inside a track is stored in that track's Err and does not stop the others;
// the returned error covers the file framing, the header and ctx.
func (d *Decoder) Decode(ctx context.Context) error {
	cr := NewChunkReader(d.r)

	first, err := cr.Next()
	if err == io.EOF {
		return fmt.Errorf("%w - empty input", ErrFmtNotSupported)
	}
	if first == nil {
		return err
	}
	if !first.IsHeader() {
		return fmt.Errorf("%w - %q", ErrFmtNotSupported, first.ID[:])
	}
	if err != nil {
		return err
	}

	d.Chunks = append(d.Chunks, first)
	if d.Header, err = ReadHeader(first.Body); err != nil {
		return err
	}

	for {
		c, err := cr.Next()
		if err == io.EOF {
			break
		}

		if c != nil {
			d.add(c)
		}

		if errors.Is(err, ErrTruncatedInput) {
			// the short chunk, if any, is decoded for what it holds
			d.log.Debug("input ends inside a chunk", zap.Error(err))
			break
		}
		if err != nil {
			return err
		}
	}

	if len(d.Tracks) != int(d.Header.Tracks) {
		d.log.Debug("track count differs from header",
			zap.Uint16("declared", d.Header.Tracks), zap.Int("found", len(d.Tracks)))
	}

	return d.decodeTracks(ctx)
}

func (d *Decoder) add(c *Chunk) {
	d.Chunks = append(d.Chunks, c)

	switch {
	case c.IsTrack():
		d.Tracks = append(d.Tracks, &Track{Chunk: c})
	case c.IsHeader():
		d.log.Debug("ignoring extra header chunk",
			zap.Int64("offset", c.Offset), zap.Error(ErrUnexpectedData))
	default:
		d.log.Debug("unknown chunk", zap.ByteString("id", c.ID[:]), zap.Uint32("length", c.Length))
	}
}

// decodeTracks decodes the tracks in parallel. Each worker owns its own
// TrackReader; bodies are disjoint, so nothing is shared.
func (d *Decoder) decodeTracks(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.concurrency)

	for i, track := range d.Tracks {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o := d.opts
			o.log = d.log.With(zap.Int("track", i))
			decoded := decodeTrack(newTrackReader(track.Chunk.Body, track.Chunk.Length, o))
			track.Events, track.Diagnostics, track.Err = decoded.Events, decoded.Diagnostics, decoded.Err

			if track.Err != nil {
				o.log.Debug("track failed", zap.Error(track.Err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
