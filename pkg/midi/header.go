package midi

import (
	"encoding/binary"
	"fmt"
)

const headerLength = 6

type Format uint16

const (
	FormatSingleTrack Format = iota
	FormatSimultaneousTracks
	FormatIndependentTracks
)

func (f Format) String() string {
	switch f {
	case FormatSingleTrack:
		return "single track"
	case FormatSimultaneousTracks:
		return "multiple simultaneous tracks"
	case FormatIndependentTracks:
		return "multiple independent tracks"
	default:
		return fmt.Sprintf("unknown format %d", uint16(f))
	}
}

// Division is the time resolution of delta-times: either ticks per quarter
// note, or SMPTE frames per second and ticks per frame.
type Division struct {
	SMPTE           bool
	TicksPerQuarter uint16
	FramesPerSecond uint8
	TicksPerFrame   uint8
}

func parseDivision(v uint16) Division {
	if v&0x8000 == 0 {
		return Division{TicksPerQuarter: v}
	}
	// the upper byte holds the frame rate as a negative two's complement number
	return Division{
		SMPTE:           true,
		FramesPerSecond: uint8(-int8(v >> 8)),
		TicksPerFrame:   uint8(v),
	}
}

type Header struct {
	Format   Format
	Tracks   uint16
	Division Division
}

// ReadHeader parses the body of an MThd chunk. Bytes past the six defined
// ones are ignored.
func ReadHeader(body []byte) (Header, error) {
	if len(body) < headerLength {
		return Header{}, &DecodeError{Offset: len(body), Err: ErrTruncatedInput}
	}

	return Header{
		Format:   Format(binary.BigEndian.Uint16(body[0:])),
		Tracks:   binary.BigEndian.Uint16(body[2:]),
		Division: parseDivision(binary.BigEndian.Uint16(body[4:])),
	}, nil
}
