package midi

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// hexBytes turns "90 40 7F" into its bytes.
func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

func newReader(t *testing.T, s string, opts ...Option) *TrackReader {
	t.Helper()
	b := hexBytes(t, s)
	return NewTrackReader(b, uint32(len(b)), opts...)
}
