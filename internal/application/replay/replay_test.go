package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hero/internal/application/system"
)

func TestFrameInput_Conversion(t *testing.T) {
	tests := []struct {
		name string
		in   system.Input
	}{
		{"idle", system.Input{}},
		{"left jump", system.Input{MoveX: -1, Jump: true}},
		{"everything", system.Input{MoveX: 1, Jump: true, Dash: true, Attack: true, Regen: true}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fi := NewFrameInput(i, tt.in)
			assert.Equal(t, i, fi.F)
			assert.Equal(t, tt.in, fi.Input())
		})
	}
}

func TestFrameInput_CompactJSON(t *testing.T) {
	data, err := json.Marshal(NewFrameInput(7, system.Input{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":7}`, string(data))

	data, err = json.Marshal(NewFrameInput(8, system.Input{MoveX: -1, Attack: true}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":8,"mx":-1,"a":true}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Level:   2,
		Coins:   15,
		Potions: 1,
		Frames: []FrameInput{
			{F: 0, MX: -1},
			{F: 1, MX: 1, J: true},
			{F: 2, A: true, Rg: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 2, replayer.Level())
	assert.Equal(t, &system.Wallet{Coins: 15, Potions: 1}, replayer.Wallet())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.Input{MoveX: -1}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.Input{MoveX: 1, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Attack)
	assert.True(t, input.Regen)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 1))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 1))

	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Idle())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 2)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 2, data.Level)
	require.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.True(t, frame.Input().Idle())
	}
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "run.json")
		body := `{"version":"2.0","seed":9,"level":3,"coins":4,"frames":[{"f":0,"mx":1},{"f":1,"j":true}]}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, int64(9), data.Seed)
		assert.Equal(t, 3, data.Level)
		assert.Equal(t, 4, data.Coins)
		require.Len(t, data.Frames, 2)
		assert.True(t, data.Frames[1].J)
	})

	t.Run("level defaults to the first map", func(t *testing.T) {
		path := filepath.Join(dir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"seed":1,"frames":[]}`), 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, 1, data.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})
}
