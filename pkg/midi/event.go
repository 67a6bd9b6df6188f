package midi

import "fmt"

// readMessage decodes exactly one message at the cursor, honouring and
// updating the running status. It returns the message and its size in bytes.
func (t *TrackReader) readMessage() (Message, int, error) {
	start := t.cur.pos

	b, err := t.cur.readByte()
	if err != nil {
		return nil, 0, err
	}

	var (
		status byte
		data   [2]byte
		read   int
	)

	if b&0x80 != 0 {
		status = b
		switch {
		case b < 0xF0:
			t.status, t.hasStatus, t.stale = b, true, false
		case b < 0xF8, b == 0xFF:
			// system common, sysex and meta cancel running status;
			// real-time messages leave it alone
			t.stale = t.hasStatus
		}
	} else {
		if !t.hasStatus {
			return nil, 0, &DecodeError{Offset: start, Err: ErrMissingRunningStatus}
		}
		if t.stale {
			t.report(Diagnostic{
				Offset: start,
				Err:    fmt.Errorf("%w: reusing %02Xh", ErrStaleRunningStatus, t.status),
			})
			t.stale = false
		}
		status = t.status
		data[0] = b
		read = 1
	}

	command, channel := status>>4, status&0x0F

	var required int
	switch command {
	case 0x8, 0x9, 0xA, 0xB, 0xE:
		required = 2
	case 0xC, 0xD:
		required = 1
	case 0xF:
		switch channel {
		case 0x0, 0x7:
			m, err := readSysEx(t.cur, status, t.opts.sysExData)
			return m, t.cur.pos - start, err
		case 0xF:
			m, err := readMeta(t.cur, t.report)
			return m, t.cur.pos - start, err
		case 0x1, 0x3:
			required = 1
		case 0x2:
			required = 2
		default:
			// 0x4 to 0x6 and the real-time messages carry no data
			required = 0
		}
	}

	for ; read < required; read++ {
		at := t.cur.pos
		v, err := t.cur.readByte()
		if err != nil {
			return nil, 0, err
		}
		if v&0x80 != 0 {
			t.report(Diagnostic{
				Offset: at,
				Err:    fmt.Errorf("%w: status byte %02Xh where data byte of %02Xh expected", ErrUnexpectedData, v, status),
			})
		}
		data[read] = v & 0x7F
	}

	return t.interpret(status, data), t.cur.pos - start, nil
}

func (t *TrackReader) interpret(status byte, data [2]byte) Message {
	command, channel := status>>4, status&0x0F

	switch command {
	case 0x8:
		return NoteOff{Channel: channel, Note: Note(data[0]), Velocity: data[1]}
	case 0x9:
		return NoteOn{Channel: channel, Note: Note(data[0]), Velocity: data[1]}
	case 0xA:
		return KeyPressure{Channel: channel, Note: Note(data[0]), Pressure: data[1]}
	case 0xB:
		if data[0] >= firstChannelModeController {
			return ChannelMode{Channel: channel, Controller: data[0], Value: data[1]}
		}
		return ControlChange{Channel: channel, Controller: data[0], Value: data[1]}
	case 0xC:
		return ProgramChange{Channel: channel, Program: data[0]}
	case 0xD:
		return ChannelPressure{Channel: channel, Pressure: data[0]}
	case 0xE:
		return PitchBend{
			Channel:     channel,
			Value:       uint16(data[1])<<7 | uint16(data[0]),
			Sensitivity: t.bend[channel],
		}
	}

	if status >= 0xF8 {
		return SystemRealTime{Status: status}
	}

	m := SystemCommon{Status: status}
	switch status {
	case 0xF1, 0xF3:
		m.Data = []byte{data[0]}
	case 0xF2:
		m.Data = []byte{data[0], data[1]}
	}
	return m
}
