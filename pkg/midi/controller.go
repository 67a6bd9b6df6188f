package midi

// controllerNames covers the controller numbers defined by MIDI 1.0 and its
// recommended practices. Undefined numbers are absent.
var controllerNames = map[uint8]string{
	0x00: "Bank Select",
	0x01: "Modulation Wheel",
	0x02: "Breath Controller",
	0x04: "Foot Controller",
	0x05: "Portamento Time",
	0x06: "Data Entry MSB",
	0x07: "Channel Volume",
	0x08: "Balance",
	0x0A: "Pan",
	0x0B: "Expression Controller",
	0x0C: "Effect Control 1",
	0x0D: "Effect Control 2",
	0x10: "General Purpose Controller 1",
	0x11: "General Purpose Controller 2",
	0x12: "General Purpose Controller 3",
	0x13: "General Purpose Controller 4",
	0x20: "Bank Select LSB",
	0x21: "Modulation Wheel LSB",
	0x22: "Breath Controller LSB",
	0x24: "Foot Controller LSB",
	0x25: "Portamento Time LSB",
	0x26: "Data Entry LSB",
	0x27: "Channel Volume LSB",
	0x28: "Balance LSB",
	0x2A: "Pan LSB",
	0x2B: "Expression Controller LSB",
	0x2C: "Effect Control 1 LSB",
	0x2D: "Effect Control 2 LSB",
	0x30: "General Purpose Controller 1 LSB",
	0x31: "General Purpose Controller 2 LSB",
	0x32: "General Purpose Controller 3 LSB",
	0x33: "General Purpose Controller 4 LSB",
	0x40: "Damper Pedal",
	0x41: "Portamento On/Off",
	0x42: "Sostenuto",
	0x43: "Soft Pedal",
	0x44: "Legato Footswitch",
	0x45: "Hold 2",
	0x46: "Sound Variation",
	0x47: "Timbre/Harmonic Intensity",
	0x48: "Release Time",
	0x49: "Attack Time",
	0x4A: "Brightness",
	0x4B: "Decay Time",
	0x4C: "Vibrato Rate",
	0x4D: "Vibrato Depth",
	0x4E: "Vibrato Delay",
	0x4F: "Sound Controller 10",
	0x50: "General Purpose Controller 5",
	0x51: "General Purpose Controller 6",
	0x52: "General Purpose Controller 7",
	0x53: "General Purpose Controller 8",
	0x54: "Portamento Control",
	0x58: "High Resolution Velocity Prefix",
	0x5B: "Reverb Send Level",
	0x5C: "Tremolo Depth",
	0x5D: "Chorus Send Level",
	0x5E: "Celeste Depth",
	0x5F: "Phaser Depth",
	0x60: "Data Increment",
	0x61: "Data Decrement",
	0x62: "NRPN LSB",
	0x63: "NRPN MSB",
	0x64: "RPN LSB",
	0x65: "RPN MSB",
	0x78: "All Sound Off",
	0x79: "Reset All Controllers",
	0x7A: "Local Control",
	0x7B: "All Notes Off",
	0x7C: "Omni Mode Off",
	0x7D: "Omni Mode On",
	0x7E: "Mono Mode On",
	0x7F: "Poly Mode On",
}

// firstChannelModeController is the lowest controller number reserved for
// channel mode messages.
const firstChannelModeController = 0x78

// ControllerName returns the name of controller n.
func ControllerName(n uint8) (string, bool) {
	name, ok := controllerNames[n]
	return name, ok
}
