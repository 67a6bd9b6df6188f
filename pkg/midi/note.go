package midi

import "strconv"

// Note is a MIDI key number. Middle C (60) is C4.
type Note uint8

const (
	noteLetters     = "CCDDEFFGGAAB"
	noteAccidentals = "-#-#--#-#-#-"
)

func (n Note) Octave() int {
	return int(n)/12 - 1
}

// PitchClass returns the semitone above C, 0 to 11.
func (n Note) PitchClass() int {
	return int(n) % 12
}

// Letter returns the note letter, A to G.
func (n Note) Letter() byte {
	return noteLetters[n.PitchClass()]
}

// Sharp reports whether the note is spelled with a sharp.
func (n Note) Sharp() bool {
	return noteAccidentals[n.PitchClass()] == '#'
}

// Name returns the scientific pitch name, e.g. "C4" or "F#-1".
func (n Note) Name() string {
	name := string(n.Letter())
	if n.Sharp() {
		name += "#"
	}
	return name + strconv.Itoa(n.Octave())
}

func (n Note) String() string {
	return n.Name()
}
