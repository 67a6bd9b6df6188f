package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/Garik-/midiread/pkg/midi"
	"go.uber.org/zap"
)

type velocitySet map[uint8]bool

// note -> velocities it is struck with
type noteMap map[midi.Note]velocitySet

type fileStats struct {
	name        string
	tracks      int
	failed      int
	events      int
	diagnostics int
	kinds       map[midi.Kind]int
	notes       noteMap
}

func newFileStats(name string, d *midi.Decoder) *fileStats {
	log := statsLog.Named("newFileStats")

	s := &fileStats{
		name:   name,
		tracks: len(d.Tracks),
		kinds:  make(map[midi.Kind]int),
		notes:  make(noteMap),
	}

	for _, track := range d.Tracks {
		if track.Err != nil {
			s.failed++
		}
		s.diagnostics += len(track.Diagnostics)
		s.events += len(track.Events)

		for _, event := range track.Events {
			s.kinds[event.Message.Kind()]++

			on, ok := event.Message.(midi.NoteOn)
			if !ok || on.Velocity == 0 {
				continue
			}

			log.Debug("event", zap.Stringer("note", on.Note), zap.Uint8("velocity", on.Velocity))

			if _, ok := s.notes[on.Note]; !ok {
				s.notes[on.Note] = make(velocitySet)
			}
			s.notes[on.Note][on.Velocity] = true
		}
	}

	return s
}

// noteRange returns the lowest and highest note struck.
func (s *fileStats) noteRange() (lo, hi midi.Note, ok bool) {
	for note := range s.notes {
		if !ok || note < lo {
			lo = note
		}
		if !ok || note > hi {
			hi = note
		}
		ok = true
	}
	return lo, hi, ok
}

func (s *fileStats) write(w io.Writer) {
	fmt.Fprintf(w, "%s: %d tracks, %d events, %d diagnostics", s.name, s.tracks, s.events, s.diagnostics)
	if s.failed > 0 {
		fmt.Fprintf(w, ", %d tracks failed", s.failed)
	}
	fmt.Fprintln(w)

	kinds := make([]midi.Kind, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, k := range kinds {
		fmt.Fprintf(w, "\t%-30s %d\n", k, s.kinds[k])
	}

	if lo, hi, ok := s.noteRange(); ok {
		velocities := make(velocitySet)
		for _, set := range s.notes {
			for v := range set {
				velocities[v] = true
			}
		}
		fmt.Fprintf(w, "\tnotes %s to %s, %d distinct, %d distinct velocities\n", lo, hi, len(s.notes), len(velocities))
	}
}
