package midi

import (
	"fmt"

	"go.uber.org/zap"
)

// Track is a fully decoded track chunk. Err holds the fatal error that
// stopped decoding, if any; Events holds everything decoded before it.
type Track struct {
	Chunk       *Chunk
	Events      []Event
	Diagnostics []Diagnostic
	Err         error
}

// TrackReader decodes the events of one track chunk one at a time, in the
// manner of bufio.Scanner. It owns the running status and the pitch bend
// sensitivity of every channel for the lifetime of the track and must not be
// shared between goroutines.
type TrackReader struct {
	cur    *cursor
	length uint32
	opts   options
	log    *zap.Logger

	status    byte
	hasStatus bool
	stale     bool // a system message cancelled status since it was set
	bend      [16]Sensitivity

	event Event
	diags []Diagnostic
	err   error
	done  bool
}

// NewTrackReader returns a reader over body, the contents of a track chunk
// whose declared length is length. If body is shorter than length, decoding
// fails with ErrTruncatedInput when it runs out.
func NewTrackReader(body []byte, length uint32, opts ...Option) *TrackReader {
	return newTrackReader(body, length, newOptions(opts))
}

func newTrackReader(body []byte, length uint32, o options) *TrackReader {
	t := &TrackReader{
		cur:    newCursor(body, length),
		length: length,
		opts:   o,
		log:    o.log.Named("track"),
	}
	for i := range t.bend {
		t.bend[i] = DefaultSensitivity
	}
	return t
}

// Next decodes the next event. It returns false at the end of the track or
// on a fatal error; Err tells the two apart.
func (t *TrackReader) Next() bool {
	if t.done {
		return false
	}

	if uint64(t.cur.pos) >= uint64(t.length) {
		t.report(Diagnostic{Offset: t.cur.pos, Err: ErrMissingEndOfTrack})
		t.done = true
		return false
	}

	delta, err := t.cur.varLen()
	if err != nil {
		return t.fail(err)
	}

	at := t.cur.pos
	msg, size, err := t.readMessage()
	if err != nil {
		return t.fail(err)
	}

	t.event = Event{Delta: delta, Offset: at, Size: size, Message: msg}

	if _, ok := msg.(EndOfTrack); ok {
		t.done = true
		if rest := int64(t.length) - int64(t.cur.pos); rest > 0 {
			t.report(Diagnostic{
				Offset: t.cur.pos,
				Err:    fmt.Errorf("%w: %d of %d declared bytes unread", ErrTrailingBytes, rest, t.length),
			})
		}
	}

	return true
}

// Event returns the event decoded by the last successful call to Next.
func (t *TrackReader) Event() Event {
	return t.event
}

// Err returns the fatal error that stopped the reader, or nil.
func (t *TrackReader) Err() error {
	return t.err
}

// Diagnostics returns the non-fatal problems found so far.
func (t *TrackReader) Diagnostics() []Diagnostic {
	return t.diags
}

// Offset returns the number of body bytes consumed so far.
func (t *TrackReader) Offset() int {
	return t.cur.pos
}

// PitchBendSensitivity returns the sensitivity currently in effect on channel.
func (t *TrackReader) PitchBendSensitivity(channel uint8) Sensitivity {
	return t.bend[channel&0x0F]
}

// SetPitchBendSensitivity changes the sensitivity used to interpret later
// Pitch Bend messages on channel.
func (t *TrackReader) SetPitchBendSensitivity(channel uint8, s Sensitivity) {
	t.bend[channel&0x0F] = s
}

func (t *TrackReader) fail(err error) bool {
	t.err = err
	t.done = true
	t.log.Debug("decode failed", zap.Error(err))
	return false
}

func (t *TrackReader) report(d Diagnostic) {
	t.diags = append(t.diags, d)
	t.log.Debug("diagnostic", zap.Int("offset", d.Offset), zap.Error(d.Err))
}

// DecodeTrack decodes a whole track chunk body.
func DecodeTrack(body []byte, length uint32, opts ...Option) *Track {
	return decodeTrack(newTrackReader(body, length, newOptions(opts)))
}

func decodeTrack(r *TrackReader) *Track {
	t := new(Track)
	for r.Next() {
		t.Events = append(t.Events, r.Event())
	}
	t.Diagnostics = r.Diagnostics()
	t.Err = r.Err()
	return t
}
