package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(id string, body ...byte) []byte {
	out := append([]byte(id), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(out[4:], uint32(len(body)))
	return append(out, body...)
}

// writeMIDI writes a one-track file holding a single note on key.
func writeMIDI(t *testing.T, dir, name string, key byte) string {
	t.Helper()

	var data []byte
	data = append(data, chunk("MThd", 0x00, 0x00, 0x00, 0x01, 0x01, 0xE0)...)
	data = append(data, chunk("MTrk",
		0x00, 0x90, key, 0x64,
		0x83, 0x60, key, 0x00,
		0x00, 0xFF, 0x2F, 0x00)...)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(args ...string) (string, string, error) {
	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDumpSingleFile(t *testing.T) {
	path := writeMIDI(t, t.TempDir(), "one.mid", 60)

	out, _, err := execute("--plain", path)
	require.NoError(t, err)

	assert.NotContains(t, out, path, "a single input is not named")
	assert.Contains(t, out, "Header chunk, 6 bytes\n")
	assert.Contains(t, out, "\tDivision: 480 pulses per quarter note\n")
	assert.Contains(t, out, "\t0 ticks in: Note-On, channel 0h, C4, velocity 64h\n")
	assert.Contains(t, out, "\t480 ticks in: Note-On, channel 0h, C4, velocity 00h\n")
	assert.Contains(t, out, "\t0 ticks in: meta-event: End of Track\n")
}

func TestDumpRelativeName(t *testing.T) {
	dir := t.TempDir()
	writeMIDI(t, dir, "song.mid", 62)
	t.Chdir(dir)

	out, _, err := execute("--plain", "song.mid")
	require.NoError(t, err)
	assert.Contains(t, out, "\t0 ticks in: Note-On, channel 0h, D4, velocity 64h\n")

	out, _, err = execute("stats", "song.mid")
	require.NoError(t, err)
	assert.Contains(t, out, "song.mid: 1 tracks")
}

func TestDumpKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, name := range []string{"a.mid", "b.mid", "c.mid", "d.mid"} {
		paths = append(paths, writeMIDI(t, dir, name, byte(60+i)))
	}

	out, _, err := execute(append([]string{"--plain", "-j", "3"}, paths...)...)
	require.NoError(t, err)

	last := -1
	for _, p := range paths {
		i := strings.Index(out, p)
		require.GreaterOrEqual(t, i, 0, "missing %s", p)
		assert.Greater(t, i, last)
		last = i
	}
}

func TestDumpMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := writeMIDI(t, dir, "good.mid", 64)

	out, errOut, err := execute("--plain", filepath.Join(dir, "missing.mid"), good)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, errOut, "missing.mid")
	assert.Contains(t, out, "E4", "the readable file is still printed")
}

func TestDumpBrokenTrack(t *testing.T) {
	dir := t.TempDir()
	data := append(chunk("MThd", 0x00, 0x00, 0x00, 0x01, 0x00, 0x60), chunk("MTrk", 0x00, 0x40, 0x00)...)
	path := filepath.Join(dir, "broken.mid")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	out, _, err := execute("--plain", path)
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, out, "error: byte 1: data byte without running status")
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := execute("--jobs", "0", "x.mid")
	assert.Error(t, err)

	_, _, err = execute("--charset", "klingon", writeMIDI(t, t.TempDir(), "x.mid", 60))
	assert.Error(t, err)
}

func TestInputs(t *testing.T) {
	assert.Equal(t, []string{stdinName}, inputs(nil))
	assert.Equal(t, []string{"a", "b"}, inputs([]string{"a", "b"}))
}
