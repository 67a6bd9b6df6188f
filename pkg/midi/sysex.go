package midi

// readSysEx reads a system exclusive block after its 0xF0 or 0xF7 status.
// The payload length is declared up front and trusted: 0xF7 inside the
// payload is data, not a terminator.
func readSysEx(c *cursor, status byte, retain bool) (Message, error) {
	length, err := c.varLen()
	if err != nil {
		return nil, err
	}

	m := SysEx{Status: status, Length: length}
	if !retain {
		return m, c.skip(length)
	}

	if m.Data, err = c.readN(length); err != nil {
		return nil, err
	}
	return m, nil
}
