package main

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWorker(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		writeMIDI(t, dir, "a.mid", 60),
		filepath.Join(dir, "missing.mid"),
		writeMIDI(t, dir, "b.mid", 62),
	}

	results, done := decodeWorker(context.Background(), readList(context.Background(), names), 2)

	got := make(map[int]*result)
	for r := range results {
		got[r.index] = r
	}
	<-done

	require.Len(t, got, 3)
	for i, name := range names {
		assert.Equal(t, name, got[i].name)
	}

	assert.NoError(t, got[0].err)
	assert.False(t, got[0].failed())
	assert.Error(t, got[1].err)
	assert.Nil(t, got[1].decoder)
	require.NotNil(t, got[2].decoder)
	assert.Len(t, got[2].decoder.Tracks, 1)
}

func TestInOrder(t *testing.T) {
	results := make(chan *result, 4)
	for _, i := range []int{2, 0, 3, 1} {
		results <- &result{index: i}
	}
	close(results)

	var order []int
	inOrder(results, func(r *result) { order = append(order, r.index) })
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestReadListStopsOnCancel(t *testing.T) {
	names := make([]string, 1000)
	for i := range names {
		names[i] = fmt.Sprintf("%d.mid", i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	paths := readList(ctx, names)
	assert.Equal(t, "0.mid", <-paths)
	cancel()

	received := 1
	for range paths {
		received++
	}
	assert.Less(t, received, len(names), "the list is closed early once ctx is done")
}

func TestForEachFileCancelled(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for _, name := range []string{"a.mid", "b.mid", "c.mid", "d.mid"} {
		names = append(names, writeMIDI(t, dir, name, 60))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	forEachFile(ctx, names, 1, nil, func(*result) {})
}
