package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Garik-/midiread/pkg/midi"
	"golang.org/x/text/transform"
)

var (
	majorKeys = [...]string{"C♭", "G♭", "D♭", "A♭", "E♭", "B♭", "F", "C", "G", "D", "A", "E", "B", "F♯", "C♯"}
	minorKeys = [...]string{"A♭", "E♭", "B♭", "F", "C", "G", "D", "A", "E", "B", "F♯", "C♯", "G♯", "D♯", "A♯"}

	// frame rates selected by bits 5 and 6 of the SMPTE offset hour byte
	smpteRates = [...]string{"24", "25", "29.97", "30"}
)

// Message formats m as a single line of text.
func (p *Printer) Message(m midi.Message) string {
	switch m := m.(type) {
	case midi.NoteOff:
		return fmt.Sprintf("Note-Off, channel %Xh, %s, velocity %02Xh", m.Channel, m.Note, m.Velocity)
	case midi.NoteOn:
		return fmt.Sprintf("Note-On, channel %Xh, %s, velocity %02Xh", m.Channel, m.Note, m.Velocity)
	case midi.KeyPressure:
		return fmt.Sprintf("Key Pressure, channel %Xh, %s, value %02Xh", m.Channel, m.Note, m.Pressure)
	case midi.ControlChange:
		name, ok := m.Name()
		if !ok {
			name = fmt.Sprintf("controller %02Xh", m.Controller)
		}
		return fmt.Sprintf("Control Change, channel %Xh, %s, value %02Xh", m.Channel, name, m.Value)
	case midi.ChannelMode:
		return fmt.Sprintf("Channel Mode, channel %Xh, %s, value %02Xh", m.Channel, m.Name(), m.Value)
	case midi.ProgramChange:
		return fmt.Sprintf("Program Change, channel %Xh, value %Xh", m.Channel, m.Program)
	case midi.ChannelPressure:
		return fmt.Sprintf("Channel Pressure, channel %Xh, value %Xh", m.Channel, m.Pressure)
	case midi.PitchBend:
		return fmt.Sprintf("Pitch Bend, channel %Xh, %+.3f semitones", m.Channel, m.Semitones())

	case midi.SystemCommon:
		switch m.Kind() {
		case midi.KindSongPosition:
			return fmt.Sprintf("Song Position Pointer %d", m.SongPosition())
		case midi.KindTimeCodeQuarterFrame, midi.KindSongSelect:
			return fmt.Sprintf("%s %02Xh", m.Kind(), m.Data[0])
		case midi.KindTuneRequest:
			return m.Kind().String()
		default:
			return fmt.Sprintf("Undefined System Common %02Xh", m.Status)
		}
	case midi.SystemRealTime:
		return fmt.Sprintf("System Real Time: %s", m.Name())
	case midi.SysEx:
		if m.Status == 0xF7 {
			return fmt.Sprintf("System Exclusive continuation, %d bytes", m.Length)
		}
		return fmt.Sprintf("System Exclusive, %d bytes", m.Length)
	}

	return "meta-event: " + p.meta(m)
}

func (p *Printer) meta(m midi.Message) string {
	switch m := m.(type) {
	case midi.SequenceNumber:
		return fmt.Sprintf("Sequence Number %d", m.Number)
	case midi.Text:
		if m.Type == 0x7F {
			return fmt.Sprintf("%s, %d bytes", m.TypeName(), len(m.Data))
		}
		return fmt.Sprintf("%s: %s", m.TypeName(), p.decodeText(m.Data))
	case midi.ChannelPrefix:
		return fmt.Sprintf("MIDI Channel Prefix %Xh", m.Channel)
	case midi.Port:
		return fmt.Sprintf("Port %02Xh", m.Port)
	case midi.EndOfTrack:
		return "End of Track"
	case midi.SetTempo:
		bpm, err := m.BPM()
		if err != nil {
			return fmt.Sprintf("Set Tempo %d µs per quarter-note (%v)", m.MicrosecondsPerQuarter, err)
		}
		return fmt.Sprintf("Set Tempo %d µs per quarter-note (%s BPM)", m.MicrosecondsPerQuarter, formatBPM(bpm))
	case midi.SMPTEOffset:
		return fmt.Sprintf("SMPTE Offset %02d:%02d:%02d:%02d.%02d (%s fps)",
			m.Hour&0x1F, m.Minute, m.Second, m.Frame, m.Subframe, smpteRates[m.Hour>>5&0x03])
	case midi.TimeSignature:
		denominator := fmt.Sprintf("2^%d", m.DenominatorExp)
		if d, err := m.Denominator(); err == nil {
			denominator = strconv.Itoa(d)
		}
		return fmt.Sprintf("Time Signature %d/%s, %d clocks per click, %d 32nd notes per quarter-note",
			m.Numerator, denominator, m.ClocksPerClick, m.ThirtySecondsPerQuarter)
	case midi.KeySignature:
		return "Key Signature " + keyName(m)
	case midi.UnknownMeta:
		return fmt.Sprintf("type %02Xh, %d bytes long", m.Type, len(m.Data))
	}
	return fmt.Sprintf("%v", m)
}

func (p *Printer) decodeText(b []byte) string {
	s, _, err := transform.Bytes(p.text.NewDecoder(), b)
	if err != nil {
		return strconv.Quote(string(b))
	}
	return string(s)
}

func formatBPM(bpm float64) string {
	return strconv.FormatFloat(math.Round(bpm*100)/100, 'f', -1, 64)
}

func keyName(m midi.KeySignature) string {
	i := int(m.Sharps) + 7
	if i < 0 || i >= len(majorKeys) {
		return fmt.Sprintf("%d sharps", m.Sharps)
	}
	if m.Minor {
		return minorKeys[i] + " minor"
	}
	return majorKeys[i] + " major"
}
