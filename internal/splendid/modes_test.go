package splendid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeIdentifiers(t *testing.T) {
	assert.Equal(t, int32(1), Normal{}.ID())
	assert.Equal(t, int32(2), Vivid{}.ID())
	assert.Equal(t, int32(6), Manual{}.ID())
	assert.Equal(t, int32(7), EyeCare{}.ID())
	assert.Equal(t, int32(-1), EReading{}.ID())

	assert.Equal(t, SymSetPreset, Normal{}.Symbol())
	assert.Equal(t, SymSetPreset, Vivid{}.Symbol())
	assert.Equal(t, SymSetManual, Manual{}.Symbol())
	assert.Equal(t, SymSetEyeCare, EyeCare{}.Symbol())
	assert.Equal(t, SymSetMonochrome, EReading{}.Symbol())

	assert.False(t, Normal{}.IsEReading())
	assert.True(t, EReading{}.IsEReading())
}

func TestModeValidation(t *testing.T) {
	t.Run("manual accepts 0-100", func(t *testing.T) {
		_, err := NewManual(100)
		assert.NoError(t, err)

		_, err = NewManual(101)
		var rangeErr *SliderRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 101, rangeErr.Value)
		assert.Equal(t, 0, rangeErr.Min)
		assert.Equal(t, 100, rangeErr.Max)
	})

	t.Run("eye care accepts 0-4", func(t *testing.T) {
		_, err := NewEyeCare(4)
		assert.NoError(t, err)

		_, err = NewEyeCare(5)
		var rangeErr *SliderRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 0, rangeErr.Min)
		assert.Equal(t, 4, rangeErr.Max)
	})

	t.Run("e-reading grayscale accepts 1-5", func(t *testing.T) {
		_, err := NewEReading(1, 60)
		assert.NoError(t, err)
		_, err = NewEReading(5, 60)
		assert.NoError(t, err)

		for _, grayscale := range []uint8{0, 6} {
			_, err := NewEReading(grayscale, 60)
			var rangeErr *SliderRangeError
			require.ErrorAs(t, err, &rangeErr, "grayscale %d", grayscale)
			assert.Equal(t, 1, rangeErr.Min)
			assert.Equal(t, 5, rangeErr.Max)
		}
	})
}

func TestEReadingPacked(t *testing.T) {
	// User grayscale 3 maps to hardware 2: 2*256 + 60 - 206.
	mode, err := NewEReading(3, 60)
	require.NoError(t, err)
	assert.Equal(t, int32(2*256+60-206), mode.packed())
}

func TestResolveMode(t *testing.T) {
	t.Run("resolves the four color presets", func(t *testing.T) {
		mode, err := ResolveMode(State{ModeID: 1})
		require.NoError(t, err)
		assert.Equal(t, Normal{}, mode)

		mode, err = ResolveMode(State{ModeID: 2})
		require.NoError(t, err)
		assert.Equal(t, Vivid{}, mode)

		mode, err = ResolveMode(State{ModeID: 6, ManualSlider: 33})
		require.NoError(t, err)
		assert.Equal(t, Manual{Value: 33}, mode)

		mode, err = ResolveMode(State{ModeID: 7, EyeCareLevel: 3})
		require.NoError(t, err)
		assert.Equal(t, EyeCare{Level: 3}, mode)
	})

	t.Run("monochrome overrides the mode id", func(t *testing.T) {
		mode, err := ResolveMode(State{ModeID: 7, Monochrome: true, Grayscale: 4, Temperature: 80})
		require.NoError(t, err)
		assert.Equal(t, EReading{Grayscale: 4, Temperature: 80}, mode)
	})

	t.Run("unknown id without overlay is not detected", func(t *testing.T) {
		_, err := ResolveMode(State{ModeID: 3})
		assert.True(t, errors.Is(err, ErrModeNotDetected))

		_, err = ResolveMode(State{ModeID: -1})
		assert.True(t, errors.Is(err, ErrModeNotDetected))
	})
}

func TestRestoreMode(t *testing.T) {
	st := State{ManualSlider: 42, EyeCareLevel: 3}

	st.LastColorMode = 2
	assert.Equal(t, Vivid{}, RestoreMode(st))

	st.LastColorMode = 6
	assert.Equal(t, Manual{Value: 42}, RestoreMode(st))

	st.LastColorMode = 7
	assert.Equal(t, EyeCare{Level: 3}, RestoreMode(st))

	// Anything unknown falls back to Normal.
	st.LastColorMode = 99
	assert.Equal(t, Normal{}, RestoreMode(st))
	st.LastColorMode = 0
	assert.Equal(t, Normal{}, RestoreMode(st))
}
