package midi

import (
	"encoding/binary"
	"io"
)

const chunkPrefixLength = 8

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}
)

// Chunk is one top-level chunk of a file. Offset is the file offset of Body.
type Chunk struct {
	ID     [4]byte
	Length uint32
	Offset int64
	Body   []byte
}

func (c *Chunk) IsHeader() bool {
	return c.ID == headerChunkID
}

func (c *Chunk) IsTrack() bool {
	return c.ID == trackChunkID
}

// ChunkReader splits a stream into chunks: a 4-byte tag, a 4-byte big-endian
// length and that many bytes of body.
type ChunkReader struct {
	r      io.Reader
	offset int64
}

func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{r: r}
}

// Next returns the next chunk, or io.EOF at a clean end of input. A chunk
// whose body is cut short is returned along with an ErrTruncatedInput error.
func (cr *ChunkReader) Next() (*Chunk, error) {
	var prefix [chunkPrefixLength]byte
	n, err := io.ReadFull(cr.r, prefix[:])
	cr.offset += int64(n)
	switch err {
	case nil:
	case io.EOF:
		return nil, io.EOF
	case io.ErrUnexpectedEOF:
		return nil, &DecodeError{Offset: int(cr.offset), Err: ErrTruncatedInput}
	default:
		return nil, err
	}

	c := &Chunk{
		Length: binary.BigEndian.Uint32(prefix[4:]),
		Offset: cr.offset,
	}
	copy(c.ID[:], prefix[:4])

	// LimitReader keeps a bogus length from allocating gigabytes up front.
	c.Body, err = io.ReadAll(io.LimitReader(cr.r, int64(c.Length)))
	cr.offset += int64(len(c.Body))
	if err != nil {
		return c, err
	}
	if uint64(len(c.Body)) < uint64(c.Length) {
		return c, &DecodeError{Offset: int(cr.offset), Err: ErrTruncatedInput}
	}

	return c, nil
}
