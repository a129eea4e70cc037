// Package midiexport writes a score as a Standard MIDI File. Rests advance
// time without producing events; tuplet durations use their true rational
// length.
package midiexport

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/xiaoxiae/Vimvaldi/music"
)

const (
	resolution = 960 // ticks per quarter
	tempoBPM   = 120
	velocity   = 100
)

// Encode builds a single-track SMF from the score.
func Encode(s *music.Score) (*smf.SMF, error) {
	clock := smf.MetricTicks(resolution)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(uint8(s.Time.Beats), uint8(s.Time.Unit)))
	tr.Add(0, smf.MetaTempo(tempoBPM))

	carry := uint32(0) // rest time accumulates into the next event's delta
	for mi, m := range s.Measures {
		for ni, n := range m.Notes {
			if err := n.Duration.Validate(); err != nil {
				return nil, fmt.Errorf("measure %d note %d: %w", mi+1, ni+1, err)
			}
			ticks := durationTicks(clock, n.Duration)
			if n.IsRest() {
				carry += ticks
				continue
			}
			key, ok := n.Pitch.MIDIKey()
			if !ok {
				return nil, fmt.Errorf("measure %d note %d: pitch %s outside the MIDI key range", mi+1, ni+1, n.Pitch)
			}
			tr.Add(carry, midi.NoteOn(0, uint8(key), velocity))
			tr.Add(ticks, midi.NoteOff(0, uint8(key)))
			carry = 0
		}
	}
	tr.Close(carry)

	out := smf.New()
	out.TimeFormat = clock
	out.Add(tr)
	return out, nil
}

// WriteTo encodes the score and writes the file to w.
func WriteTo(s *music.Score, w io.Writer) error {
	sm, err := Encode(s)
	if err != nil {
		return err
	}
	_, err = sm.WriteTo(w)
	return err
}

// durationTicks converts a duration to metric ticks, rounding to the
// nearest tick for tuplets that do not divide evenly.
func durationTicks(clock smf.MetricTicks, d music.Duration) uint32 {
	whole := uint64(4 * clock.Ticks4th())
	v := d.Value()
	return uint32((whole*uint64(v.Num) + uint64(v.Den)/2) / uint64(v.Den))
}
