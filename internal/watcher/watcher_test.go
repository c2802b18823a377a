package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		input     string
		watchPath string
		hasGlob   bool
	}{
		{"palettes.toml", "palettes.toml", false},
		{"palettes/team.toml", "palettes/team.toml", false},
		{"palettes/*.toml", "palettes/...", true},
		{"palettes/**/*.toml", "palettes/...", true},
	} {
		watchPath, g := split(tc.input)
		assert.Equal(t, tc.watchPath, watchPath, "input %q", tc.input)
		assert.Equal(t, tc.hasGlob, g != nil, "input %q", tc.input)
	}

	_, g := split("palettes/*.toml")
	require.NotNil(t, g)
	assert.True(t, g.Match("palettes/team.toml"))
	assert.False(t, g.Match("palettes/team.json"))
}

func TestMock(t *testing.T) {
	Mock()
	defer Unmock()

	events, stop, err := Watch("palettes.toml")
	require.NoError(t, err)
	defer stop()

	go Dispatch("palettes.toml")

	batch := <-events
	require.Len(t, batch, 1)
	assert.Equal(t, "palettes.toml", batch[0].Path)
}
