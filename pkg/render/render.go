// Package render prints decoded MIDI files as human-readable text.
package render

import (
	"fmt"
	"io"

	"github.com/Garik-/midiread/pkg/midi"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#39FF14"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
)

type Options struct {
	// Charset names the encoding of text meta-events, e.g. "shift_jis" or
	// "windows-1252". Empty means UTF-8.
	Charset string
	// Plain disables styling.
	Plain bool
}

// Printer writes decoded files to w. It is not safe for concurrent use.
type Printer struct {
	w    io.Writer
	text encoding.Encoding

	heading func(string) string
	warning func(string) string
	failure func(string) string
}

func New(w io.Writer, opts Options) (*Printer, error) {
	name := opts.Charset
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}

	p := &Printer{w: w, text: enc}
	if opts.Plain {
		plain := func(s string) string { return s }
		p.heading, p.warning, p.failure = plain, plain, plain
	} else {
		p.heading, p.warning, p.failure = styled(headingStyle), styled(warningStyle), styled(failureStyle)
	}
	return p, nil
}

func styled(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// File prints every chunk of d in file order, followed by err if it is not nil.
func (p *Printer) File(name string, d *midi.Decoder, err error) {
	if name != "" {
		p.printf("%s\n", p.heading(name))
	}

	tracks := make(map[*midi.Chunk]*midi.Track, len(d.Tracks))
	for _, t := range d.Tracks {
		tracks[t.Chunk] = t
	}

	for i, c := range d.Chunks {
		switch {
		case i == 0 && c.IsHeader():
			p.Header(c, d.Header)
		case tracks[c] != nil:
			p.Track(tracks[c])
		default:
			p.printf("%s\n", p.heading(fmt.Sprintf("Unknown chunk %q, %d bytes", c.ID[:], c.Length)))
		}
	}

	if err != nil {
		p.printf("%s\n", p.failure(fmt.Sprintf("error: %v", err)))
	}
}

func (p *Printer) Header(c *midi.Chunk, h midi.Header) {
	p.printf("%s\n", p.heading(fmt.Sprintf("Header chunk, %d bytes", c.Length)))
	p.printf("\tFormat: %s\n", h.Format)
	p.printf("\tNumber of tracks: %d\n", h.Tracks)
	if h.Division.SMPTE {
		p.printf("\tDivision: %d frames per second, %d ticks per frame\n", h.Division.FramesPerSecond, h.Division.TicksPerFrame)
	} else {
		p.printf("\tDivision: %d pulses per quarter note\n", h.Division.TicksPerQuarter)
	}
}

func (p *Printer) Track(t *midi.Track) {
	if t.Chunk != nil {
		p.printf("%s\n", p.heading(fmt.Sprintf("Track chunk, %d bytes", t.Chunk.Length)))
	}
	for _, e := range t.Events {
		p.printf("\t%d ticks in: %s\n", e.Delta, p.Message(e.Message))
	}
	for _, d := range t.Diagnostics {
		p.printf("\t%s\n", p.warning("warning: "+d.String()))
	}
	if t.Err != nil {
		p.printf("\t%s\n", p.failure(fmt.Sprintf("error: %v", t.Err)))
	}
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}
