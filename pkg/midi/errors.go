package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")

	// ErrTruncatedInput reports that the input ended before an event or chunk was complete.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrOverlongQuantity reports a variable-length quantity that does not end within 4 bytes.
	ErrOverlongQuantity = errors.New("variable-length quantity exceeds 4 bytes")
	// ErrMissingRunningStatus reports a data byte seen while no running status is in effect.
	ErrMissingRunningStatus = errors.New("data byte without running status")

	// ErrLengthMismatch reports a meta-event whose declared length differs from the length of its type.
	ErrLengthMismatch = errors.New("meta-event length mismatch")
	// ErrInvalidTempo reports a Set Tempo meta-event of zero microseconds per quarter note.
	ErrInvalidTempo = errors.New("invalid tempo")
	// ErrInvalidTimeSignature reports a Time Signature meta-event whose denominator exponent is out of range.
	ErrInvalidTimeSignature = errors.New("invalid time signature")
	// ErrTrailingBytes reports bytes left in a track chunk after its End of Track meta-event.
	ErrTrailingBytes = errors.New("bytes after end of track")
	// ErrMissingEndOfTrack reports a track chunk that ends without an End of Track meta-event.
	ErrMissingEndOfTrack = errors.New("missing end of track")
	// ErrStaleRunningStatus reports running status reused after a system common,
	// system exclusive or meta event cancelled it.
	ErrStaleRunningStatus = errors.New("running status reused after cancellation")
)

// DecodeError is a fatal error positioned at a byte offset of the track or file being read.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("byte %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Diagnostic is a non-fatal problem found while decoding a track.
// Err wraps one of ErrLengthMismatch, ErrInvalidTempo, ErrTrailingBytes,
// ErrMissingEndOfTrack or ErrUnexpectedData.
type Diagnostic struct {
	Offset int
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("byte %d: %v", d.Offset, d.Err)
}
