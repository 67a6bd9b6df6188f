package midi

import (
	"encoding/binary"
	"fmt"
)

const (
	metaSequenceNumber    = 0x00
	metaText              = 0x01
	metaCopyright         = 0x02
	metaTrackName         = 0x03
	metaInstrumentName    = 0x04
	metaLyric             = 0x05
	metaMarker            = 0x06
	metaCuePoint          = 0x07
	metaProgramName       = 0x08
	metaDeviceName        = 0x09
	metaChannelPrefix     = 0x20
	metaPort              = 0x21
	metaEndOfTrack        = 0x2F
	metaSetTempo          = 0x51
	metaSMPTEOffset       = 0x54
	metaTimeSignature     = 0x58
	metaKeySignature      = 0x59
	metaSequencerSpecific = 0x7F
)

// metaLengths holds the payload length of each fixed-size meta-event type.
var metaLengths = map[byte]int{
	metaSequenceNumber: 2,
	metaChannelPrefix:  1,
	metaPort:           1,
	metaEndOfTrack:     0,
	metaSetTempo:       3,
	metaSMPTEOffset:    5,
	metaTimeSignature:  4,
	metaKeySignature:   2,
}

var textTypeNames = map[byte]string{
	metaText:              "Text",
	metaCopyright:         "Copyright Notice",
	metaTrackName:         "Sequence/Track Name",
	metaInstrumentName:    "Instrument Name",
	metaLyric:             "Lyric",
	metaMarker:            "Marker",
	metaCuePoint:          "Cue Point",
	metaProgramName:       "Program Name",
	metaDeviceName:        "Device Name",
	metaSequencerSpecific: "Sequencer-Specific",
}

func isTextMeta(typ byte) bool {
	_, ok := textTypeNames[typ]
	return ok
}

type SequenceNumber struct {
	Number uint16
}

// Text is any of the text-like meta-events. Data holds the raw payload; its
// character encoding is not defined by the file format.
type Text struct {
	Type byte
	Data []byte
}

// TypeName returns the name of the text meta-event type.
func (m Text) TypeName() string {
	return textTypeNames[m.Type]
}

type ChannelPrefix struct {
	Channel uint8
}

type Port struct {
	Port uint8
}

type EndOfTrack struct{}

type SetTempo struct {
	MicrosecondsPerQuarter uint32
}

// BPM returns the tempo in quarter notes per minute.
func (m SetTempo) BPM() (float64, error) {
	if m.MicrosecondsPerQuarter == 0 {
		return 0, ErrInvalidTempo
	}
	return 60000000 / float64(m.MicrosecondsPerQuarter), nil
}

type SMPTEOffset struct {
	Hour     uint8
	Minute   uint8
	Second   uint8
	Frame    uint8
	Subframe uint8
}

// TimeSignature keeps the denominator as the power-of-two exponent it is
// stored as; see Denominator.
type TimeSignature struct {
	Numerator               uint8
	DenominatorExp          uint8
	ClocksPerClick          uint8
	ThirtySecondsPerQuarter uint8
}

// maxDenominatorExp keeps 1<<DenominatorExp within a 32-bit int.
const maxDenominatorExp = 30

// Denominator returns 2 to the power of DenominatorExp, or
// ErrInvalidTimeSignature when the exponent is too large to be real.
func (m TimeSignature) Denominator() (int, error) {
	if m.DenominatorExp > maxDenominatorExp {
		return 0, ErrInvalidTimeSignature
	}
	return 1 << m.DenominatorExp, nil
}

// KeySignature counts sharps when positive and flats when negative.
type KeySignature struct {
	Sharps int8
	Minor  bool
}

// UnknownMeta is a meta-event of an unrecognised type, or of a known type
// whose payload is too short to interpret.
type UnknownMeta struct {
	Type byte
	Data []byte
}

func (SequenceNumber) Kind() Kind { return KindSequenceNumber }
func (Text) Kind() Kind           { return KindText }
func (ChannelPrefix) Kind() Kind  { return KindChannelPrefix }
func (Port) Kind() Kind           { return KindPort }
func (EndOfTrack) Kind() Kind     { return KindEndOfTrack }
func (SetTempo) Kind() Kind       { return KindSetTempo }
func (SMPTEOffset) Kind() Kind    { return KindSMPTEOffset }
func (TimeSignature) Kind() Kind  { return KindTimeSignature }
func (KeySignature) Kind() Kind   { return KindKeySignature }
func (UnknownMeta) Kind() Kind    { return KindUnknownMeta }

func (SequenceNumber) message() {}
func (Text) message()           {}
func (ChannelPrefix) message()  {}
func (Port) message()           {}
func (EndOfTrack) message()     {}
func (SetTempo) message()       {}
func (SMPTEOffset) message()    {}
func (TimeSignature) message()  {}
func (KeySignature) message()   {}
func (UnknownMeta) message()    {}

// readMeta reads a meta-event after its 0xFF status: a type byte, a
// variable-length payload length and the payload. The declared length is
// always what gets consumed.
func readMeta(c *cursor, report func(Diagnostic)) (Message, error) {
	typ, err := c.readByte()
	if err != nil {
		return nil, err
	}

	length, err := c.varLen()
	if err != nil {
		return nil, err
	}

	at := c.pos
	data, err := c.readN(length)
	if err != nil {
		return nil, err
	}

	return decodeMeta(typ, data, at, report), nil
}

func decodeMeta(typ byte, data []byte, at int, report func(Diagnostic)) Message {
	if want, ok := metaLengths[typ]; ok && len(data) != want {
		report(Diagnostic{
			Offset: at,
			Err:    fmt.Errorf("%w: type %02Xh declares %d bytes, expected %d", ErrLengthMismatch, typ, len(data), want),
		})
		if len(data) < want {
			return UnknownMeta{Type: typ, Data: data}
		}
	}

	switch typ {
	case metaSequenceNumber:
		return SequenceNumber{Number: binary.BigEndian.Uint16(data)}

	case metaChannelPrefix:
		return ChannelPrefix{Channel: data[0]}

	case metaPort:
		return Port{Port: data[0]}

	case metaEndOfTrack:
		return EndOfTrack{}

	case metaSetTempo:
		m := SetTempo{MicrosecondsPerQuarter: uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])}
		if m.MicrosecondsPerQuarter == 0 {
			report(Diagnostic{Offset: at, Err: fmt.Errorf("%w: 0 microseconds per quarter note", ErrInvalidTempo)})
		}
		return m

	case metaSMPTEOffset:
		return SMPTEOffset{Hour: data[0], Minute: data[1], Second: data[2], Frame: data[3], Subframe: data[4]}

	case metaTimeSignature:
		m := TimeSignature{
			Numerator:               data[0],
			DenominatorExp:          data[1],
			ClocksPerClick:          data[2],
			ThirtySecondsPerQuarter: data[3],
		}
		if m.DenominatorExp > maxDenominatorExp {
			report(Diagnostic{Offset: at, Err: fmt.Errorf("%w: denominator 2^%d", ErrInvalidTimeSignature, m.DenominatorExp)})
		}
		return m

	case metaKeySignature:
		return KeySignature{Sharps: int8(data[0]), Minor: data[1] != 0}
	}

	if isTextMeta(typ) {
		return Text{Type: typ, Data: data}
	}
	return UnknownMeta{Type: typ, Data: data}
}
