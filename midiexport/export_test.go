package midiexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/xiaoxiae/Vimvaldi/lilypond"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestEncodeRoundTripsThroughSMF(t *testing.T) {
	t.Parallel()

	score, err := lilypond.Decode("\\clef treble\n\\time 3/4\nc'4 r4 e'4 |\ng'2.\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(score, &buf))

	read, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, read.Tracks, 1)

	var ons, offs int
	var keys []uint8
	for _, evt := range read.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0:
			ons++
			keys = append(keys, key)
		case evt.Message.Is(midi.NoteOffMsg), evt.Message.GetNoteOn(&ch, &key, &vel) && vel == 0:
			offs++
		}
	}
	require.Equal(t, 3, ons, "rests produce no events")
	require.Equal(t, 3, offs)
	require.Equal(t, []uint8{60, 64, 67}, keys)
}

func TestEncodeTiming(t *testing.T) {
	t.Parallel()

	score, err := lilypond.Decode("c'4 r4 e'4")
	require.NoError(t, err)

	sm, err := Encode(score)
	require.NoError(t, err)

	// the rest's quarter (960 ticks) lands on the second NoteOn's delta
	var deltas []uint32
	for _, evt := range sm.Tracks[0] {
		var ch, key, vel uint8
		if evt.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
			deltas = append(deltas, evt.Delta)
		}
	}
	require.Equal(t, []uint32{0, 960}, deltas)
}

func TestEncodeRejectsUnplayablePitch(t *testing.T) {
	t.Parallel()

	score, err := lilypond.Decode("c,,,,,4")
	require.NoError(t, err)

	_, err = Encode(score)
	require.ErrorContains(t, err, "MIDI key range")
}
