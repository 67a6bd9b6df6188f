package midi

const maxVarLenBytes = 4

// DecodeVarLen decodes the variable-length quantity at the start of b and
// returns its value and the number of bytes it occupies.
func DecodeVarLen(b []byte) (uint32, int, error) {
	c := cursor{buf: b, limit: len(b)}
	val, err := c.varLen()
	return val, c.pos, err
}

// varLen returns the variable length value at the exact parser location.
func (c *cursor) varLen() (uint32, error) {
	start := c.pos

	var val uint32
	for i := 0; i < maxVarLenBytes; i++ {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		val = val<<7 | uint32(b&0x7f)
		if b&0x80 == 0 {
			return val, nil
		}
	}

	return 0, &DecodeError{Offset: start, Err: ErrOverlongQuantity}
}

// AppendVarLen appends the variable-length encoding of v to dst.
// Only the low 28 bits of v are encoded.
func AppendVarLen(dst []byte, v uint32) []byte {
	v &= 0x0fffffff

	var buf [maxVarLenBytes]byte
	i := len(buf) - 1
	buf[i] = byte(v & 0x7f)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		buf[i] = byte(v&0x7f) | 0x80
	}

	return append(dst, buf[i:]...)
}
