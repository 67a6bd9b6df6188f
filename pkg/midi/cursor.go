package midi

// cursor reads a track body front to back. It never reads at or past limit,
// which is the declared chunk length clipped to the bytes actually present.
type cursor struct {
	buf   []byte
	pos   int
	limit int
}

func newCursor(buf []byte, length uint32) *cursor {
	limit := len(buf)
	if uint64(length) < uint64(limit) {
		limit = int(length)
	}
	return &cursor{buf: buf, limit: limit}
}

func (c *cursor) remaining() int {
	return c.limit - c.pos
}

func (c *cursor) truncated() error {
	return &DecodeError{Offset: c.pos, Err: ErrTruncatedInput}
}

func (c *cursor) readByte() (byte, error) {
	if c.pos >= c.limit {
		return 0, c.truncated()
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// readN returns the next n bytes. The slice aliases the underlying buffer.
func (c *cursor) readN(n uint32) ([]byte, error) {
	if uint64(n) > uint64(c.remaining()) {
		c.pos = c.limit
		return nil, c.truncated()
	}
	b := c.buf[c.pos : c.pos+int(n) : c.pos+int(n)]
	c.pos += int(n)
	return b, nil
}

func (c *cursor) skip(n uint32) error {
	_, err := c.readN(n)
	return err
}
