package midi

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func chunkBytes(id string, body []byte) []byte {
	out := append([]byte(id), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(out[4:], uint32(len(body)))
	return append(out, body...)
}

func testFile(t *testing.T) []byte {
	var buf bytes.Buffer
	buf.Write(chunkBytes("MThd", hexBytes(t, "00 01 00 02 00 60")))
	buf.Write(chunkBytes("MTrk", hexBytes(t, "00 FF 51 03 07 A1 20 00 FF 2F 00")))
	buf.Write(chunkBytes("XFIH", []byte("opaque")))
	buf.Write(chunkBytes("MTrk", hexBytes(t, "00 90 3C 64 60 3C 00 00 FF 2F 00")))
	return buf.Bytes()
}

func TestChunkReader(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader(testFile(t)))

	var ids []string
	var offsets []int64
	for {
		c, err := cr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, int(c.Length), len(c.Body))
		ids = append(ids, string(c.ID[:]))
		offsets = append(offsets, c.Offset)
	}

	assert.Equal(t, []string{"MThd", "MTrk", "XFIH", "MTrk"}, ids)
	assert.Equal(t, []int64{8, 22, 41, 55}, offsets)
}

func TestChunkReaderTruncated(t *testing.T) {
	data := testFile(t)

	cr := NewChunkReader(bytes.NewReader(data[:len(data)-3]))
	var last *Chunk
	var err error
	for err == nil {
		var c *Chunk
		c, err = cr.Next()
		if c != nil {
			last = c
		}
	}
	require.ErrorIs(t, err, ErrTruncatedInput)
	require.NotNil(t, last)
	assert.True(t, last.IsTrack())
	assert.Len(t, last.Body, 8)

	_, err = NewChunkReader(bytes.NewReader([]byte("MTr"))).Next()
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecoderDecode(t *testing.T) {
	d := NewDecoder(bytes.NewReader(testFile(t)), WithConcurrency(2))
	require.NoError(t, d.Decode(context.Background()))

	assert.Equal(t, Header{Format: FormatSimultaneousTracks, Tracks: 2, Division: Division{TicksPerQuarter: 96}}, d.Header)
	require.Len(t, d.Chunks, 4)
	assert.Equal(t, "XFIH", string(d.Chunks[2].ID[:]))
	assert.Equal(t, []byte("opaque"), d.Chunks[2].Body)

	require.Len(t, d.Tracks, 2)
	assert.Same(t, d.Chunks[1], d.Tracks[0].Chunk)
	assert.Same(t, d.Chunks[3], d.Tracks[1].Chunk)

	for _, track := range d.Tracks {
		assert.NoError(t, track.Err)
		assert.Empty(t, track.Diagnostics)
	}
	assert.Equal(t, []Kind{KindSetTempo, KindEndOfTrack}, kinds(d.Tracks[0].Events))
	assert.Equal(t, []Kind{KindNoteOn, KindNoteOn, KindEndOfTrack}, kinds(d.Tracks[1].Events))
	assert.Equal(t, uint32(96), d.Tracks[1].Events[1].Delta)
}

func TestDecoderTrackFailureIsLocal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(chunkBytes("MThd", hexBytes(t, "00 01 00 02 00 60")))
	buf.Write(chunkBytes("MTrk", hexBytes(t, "00 40 7F 00 FF 2F 00")))
	buf.Write(chunkBytes("MTrk", hexBytes(t, "00 C0 01 00 FF 2F 00")))

	d := NewDecoder(&buf)
	require.NoError(t, d.Decode(context.Background()))
	require.Len(t, d.Tracks, 2)

	assert.ErrorIs(t, d.Tracks[0].Err, ErrMissingRunningStatus)
	assert.NoError(t, d.Tracks[1].Err)
	assert.Equal(t, []Kind{KindProgramChange, KindEndOfTrack}, kinds(d.Tracks[1].Events))
}

func TestDecoderTruncatedFile(t *testing.T) {
	data := testFile(t)

	d := NewDecoder(bytes.NewReader(data[:len(data)-3]))
	require.NoError(t, d.Decode(context.Background()))

	require.Len(t, d.Tracks, 2)
	assert.ErrorIs(t, d.Tracks[1].Err, ErrTruncatedInput)
	assert.Len(t, d.Tracks[1].Events, 2)
}

func TestDecoderRejectsNonMIDI(t *testing.T) {
	err := NewDecoder(bytes.NewReader(chunkBytes("RIFF", []byte("data")))).Decode(context.Background())
	assert.ErrorIs(t, err, ErrFmtNotSupported)

	err = NewDecoder(bytes.NewReader(nil)).Decode(context.Background())
	assert.ErrorIs(t, err, ErrFmtNotSupported)

	err = NewDecoder(bytes.NewReader(chunkBytes("MThd", []byte{0, 0}))).Decode(context.Background())
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecoderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDecoder(bytes.NewReader(testFile(t))).Decode(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// writeSMF produces a file with gomidi's writer, which is free to use
// running status and its own choice of meta-events.
func writeSMF(t *testing.T) []byte {
	t.Helper()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(480)

	var track smf.Track
	track.Add(0, smf.MetaTempo(120))
	track.Add(0, gomidi.NoteOn(0, 60, 100))
	track.Add(240, gomidi.NoteOn(0, 64, 90))
	track.Add(240, gomidi.NoteOff(0, 60))
	track.Add(0, gomidi.NoteOff(0, 64))
	track.Add(0, gomidi.ControlChange(0, 7, 100))
	track.Add(0, gomidi.Pitchbend(0, 0))
	track.Close(0)
	require.NoError(t, s.Add(track))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecoderReadsGomidiFile(t *testing.T) {
	d := NewDecoder(bytes.NewReader(writeSMF(t)))
	require.NoError(t, d.Decode(context.Background()))

	assert.Equal(t, uint16(480), d.Header.Division.TicksPerQuarter)
	require.Len(t, d.Tracks, 1)

	track := d.Tracks[0]
	require.NoError(t, track.Err)
	assert.Empty(t, track.Diagnostics)
	require.NotEmpty(t, track.Events)
	assert.Equal(t, KindEndOfTrack, track.Events[len(track.Events)-1].Message.Kind())

	var (
		tempo   *SetTempo
		notes   []Note
		starts  int
		ticks   uint32
		bend    *PitchBend
		control *ControlChange
	)
	for _, e := range track.Events {
		ticks += e.Delta
		switch m := e.Message.(type) {
		case SetTempo:
			tempo = &m
		case NoteOn:
			notes = append(notes, m.Note)
			if m.Velocity > 0 {
				starts++
			}
		case NoteOff:
			notes = append(notes, m.Note)
		case ControlChange:
			control = &m
		case PitchBend:
			bend = &m
		}
	}

	require.NotNil(t, tempo)
	assert.Equal(t, uint32(500000), tempo.MicrosecondsPerQuarter)
	assert.Equal(t, []Note{60, 64, 60, 64}, notes)
	assert.Equal(t, 2, starts)
	assert.Equal(t, uint32(480), ticks)

	require.NotNil(t, control)
	assert.Equal(t, ControlChange{Channel: 0, Controller: 7, Value: 100}, *control)
	require.NotNil(t, bend)
	assert.InDelta(t, 0.0, bend.Semitones(), 0.0005)
}
