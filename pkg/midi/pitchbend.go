package midi

const (
	pitchBendCenter  = 0x2000
	pitchBendMaximum = 0x1FFF
)

// Sensitivity is the pitch bend range of one channel: how far a full bend
// moves the pitch, in semitones plus cents.
type Sensitivity struct {
	Semitones int
	Cents     int
}

// DefaultSensitivity is the range every channel starts with.
var DefaultSensitivity = Sensitivity{Semitones: 2}

// Range returns the sensitivity in (fractional) semitones.
func (s Sensitivity) Range() float64 {
	return float64(s.Semitones) + float64(s.Cents)/100
}

// Bipolar returns the wheel position relative to its center, -8192 to 8191.
func (m PitchBend) Bipolar() int {
	return int(m.Value) - pitchBendCenter
}

// Semitones returns the pitch offset the bend produces.
func (m PitchBend) Semitones() float64 {
	return float64(m.Bipolar()) * m.Sensitivity.Range() / pitchBendMaximum
}
