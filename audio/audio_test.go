package audio

import (
	"Countdown/timer"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeLength(t *testing.T) {
	buf, err := Chime(SampleRate)
	require.NoError(t, err)

	want := 3*SampleRate.N(chimeBeep) + 2*SampleRate.N(chimeGap)
	assert.Equal(t, want, buf.Len())
	assert.Equal(t, SampleRate, buf.Format().SampleRate)
}

func TestDecodeFileErrors(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.ogg"), SampleRate)
	assert.Error(t, err)

	junk := filepath.Join(t.TempDir(), "junk.ogg")
	require.NoError(t, os.WriteFile(junk, []byte("definitely not vorbis"), 0o600))
	_, err = DecodeFile(junk, SampleRate)
	assert.Error(t, err)
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(&timer.Config{Sound: false})
	assert.False(t, p.Enabled())
	p.Play()

	var nilPlayer *Player
	assert.False(t, nilPlayer.Enabled())
	nilPlayer.Play()
}
