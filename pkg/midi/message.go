package midi

// Kind enumerates every message variant the decoder produces.
type Kind int

const (
	KindNoteOff Kind = iota + 1
	KindNoteOn
	KindKeyPressure
	KindControlChange
	KindChannelMode
	KindProgramChange
	KindChannelPressure
	KindPitchBend

	KindTimeCodeQuarterFrame
	KindSongPosition
	KindSongSelect
	KindTuneRequest
	KindUndefinedSystemCommon
	KindSystemRealTime
	KindSysEx

	KindSequenceNumber
	KindText
	KindChannelPrefix
	KindPort
	KindEndOfTrack
	KindSetTempo
	KindSMPTEOffset
	KindTimeSignature
	KindKeySignature
	KindUnknownMeta
)

var kindNames = map[Kind]string{
	KindNoteOff:               "Note-Off",
	KindNoteOn:                "Note-On",
	KindKeyPressure:           "Key Pressure",
	KindControlChange:         "Control Change",
	KindChannelMode:           "Channel Mode",
	KindProgramChange:         "Program Change",
	KindChannelPressure:       "Channel Pressure",
	KindPitchBend:             "Pitch Bend",
	KindTimeCodeQuarterFrame:  "MIDI Time Code Quarter Frame",
	KindSongPosition:          "Song Position Pointer",
	KindSongSelect:            "Song Select",
	KindTuneRequest:           "Tune Request",
	KindUndefinedSystemCommon: "Undefined System Common",
	KindSystemRealTime:        "System Real Time",
	KindSysEx:                 "System Exclusive",
	KindSequenceNumber:        "Sequence Number",
	KindText:                  "Text",
	KindChannelPrefix:         "MIDI Channel Prefix",
	KindPort:                  "Port",
	KindEndOfTrack:            "End of Track",
	KindSetTempo:              "Set Tempo",
	KindSMPTEOffset:           "SMPTE Offset",
	KindTimeSignature:         "Time Signature",
	KindKeySignature:          "Key Signature",
	KindUnknownMeta:           "Unknown Meta-Event",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsChannel reports whether k is a channel voice or channel mode message.
func (k Kind) IsChannel() bool {
	return KindNoteOff <= k && k <= KindPitchBend
}

// IsMeta reports whether k is a meta-event.
func (k Kind) IsMeta() bool {
	return KindSequenceNumber <= k && k <= KindUnknownMeta
}

// Message is one decoded MIDI, system exclusive or meta message.
// The set of implementations is closed; switch on the concrete type.
type Message interface {
	Kind() Kind
	message()
}

// Event is a message together with the delta-time that precedes it.
// Offset and Size locate the message bytes within the track body.
type Event struct {
	Delta   uint32
	Offset  int
	Size    int
	Message Message
}

type NoteOff struct {
	Channel  uint8
	Note     Note
	Velocity uint8
}

type NoteOn struct {
	Channel  uint8
	Note     Note
	Velocity uint8
}

type KeyPressure struct {
	Channel  uint8
	Note     Note
	Pressure uint8
}

type ControlChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

// Name returns the controller name, if the controller number has one.
func (m ControlChange) Name() (string, bool) {
	return ControllerName(m.Controller)
}

// ChannelMode is a Control Change message on controllers 120 to 127.
type ChannelMode struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

func (m ChannelMode) Name() string {
	name, _ := ControllerName(m.Controller)
	return name
}

type ProgramChange struct {
	Channel uint8
	Program uint8
}

type ChannelPressure struct {
	Channel  uint8
	Pressure uint8
}

// PitchBend carries the raw 14-bit wheel position and the sensitivity that
// was in effect on its channel when it was decoded.
type PitchBend struct {
	Channel     uint8
	Value       uint16
	Sensitivity Sensitivity
}

// SystemCommon is one of the 0xF1 to 0xF6 messages.
type SystemCommon struct {
	Status byte
	Data   []byte
}

// SongPosition returns the 14-bit song position of a Song Position Pointer.
func (m SystemCommon) SongPosition() uint16 {
	if len(m.Data) < 2 {
		return 0
	}
	return uint16(m.Data[1])<<7 | uint16(m.Data[0])
}

// SystemRealTime is one of the 0xF8 to 0xFE messages.
type SystemRealTime struct {
	Status byte
}

var realTimeNames = map[byte]string{
	0xF8: "Timing Clock",
	0xFA: "Start",
	0xFB: "Continue",
	0xFC: "Stop",
	0xFE: "Active Sensing",
}

// Name returns the message name, or "Undefined" for 0xF9 and 0xFD.
func (m SystemRealTime) Name() string {
	if name, ok := realTimeNames[m.Status]; ok {
		return name
	}
	return "Undefined"
}

// SysEx is a system exclusive block started by 0xF0 or continued by 0xF7.
// Data is nil when the decoder does not retain payloads; Length is always
// the declared payload length.
type SysEx struct {
	Status byte
	Length uint32
	Data   []byte
}

func (NoteOff) Kind() Kind         { return KindNoteOff }
func (NoteOn) Kind() Kind          { return KindNoteOn }
func (KeyPressure) Kind() Kind     { return KindKeyPressure }
func (ControlChange) Kind() Kind   { return KindControlChange }
func (ChannelMode) Kind() Kind     { return KindChannelMode }
func (ProgramChange) Kind() Kind   { return KindProgramChange }
func (ChannelPressure) Kind() Kind { return KindChannelPressure }
func (PitchBend) Kind() Kind       { return KindPitchBend }
func (SystemRealTime) Kind() Kind  { return KindSystemRealTime }
func (SysEx) Kind() Kind           { return KindSysEx }

func (m SystemCommon) Kind() Kind {
	switch m.Status {
	case 0xF1:
		return KindTimeCodeQuarterFrame
	case 0xF2:
		return KindSongPosition
	case 0xF3:
		return KindSongSelect
	case 0xF6:
		return KindTuneRequest
	default:
		return KindUndefinedSystemCommon
	}
}

func (NoteOff) message()         {}
func (NoteOn) message()          {}
func (KeyPressure) message()     {}
func (ControlChange) message()   {}
func (ChannelMode) message()     {}
func (ProgramChange) message()   {}
func (ChannelPressure) message() {}
func (PitchBend) message()       {}
func (SystemCommon) message()    {}
func (SystemRealTime) message()  {}
func (SysEx) message()           {}
