package palettefile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amonks/colorhash"
)

func TestLoad(t *testing.T) {
	pf, err := Load("testdata/palettes.toml")
	require.NoError(t, err)
	require.Len(t, pf.Palettes, 3)

	ch, name := pf.For("tag-networking")
	assert.Equal(t, "tags", name)
	hsl := ch.HSL("tag-networking")
	assert.Contains(t, []float64{90, 100}, hsl.S)
	assert.Contains(t, []float64{70, 80}, hsl.L)
	inRange := (hsl.H >= 30 && hsl.H < 90) || (hsl.H >= 180 && hsl.H < 210)
	assert.True(t, inRange, "hue %v outside configured ranges", hsl.H)

	ch, name = pf.For("label/infra/urgent")
	assert.Equal(t, "tags", name)
	_ = ch

	ch, name = pf.For("user-griffin")
	assert.Equal(t, "users", name)
	assert.Equal(t, 50.0, ch.HSL("user-griffin").L)

	// The catch-all palette has no overrides, so routing through it
	// matches the default configuration.
	ch, name = pf.For("hello world")
	assert.Equal(t, "everything-else", name)
	assert.Equal(t, colorhash.New().HSL("hello world"), ch.HSL("hello world"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.toml")
	assert.Error(t, err)
}

func TestForWithoutCatchAll(t *testing.T) {
	pf, err := Parse([]byte(`
[[palette]]
name = "tags"
match = ["tag-*"]
saturations = [100]
`))
	require.NoError(t, err)

	ch, name := pf.For("unrelated")
	assert.Equal(t, "", name)
	assert.Equal(t, colorhash.New().HSL("unrelated"), ch.HSL("unrelated"))
}

func TestFind(t *testing.T) {
	pf, err := Load("testdata/palettes.toml")
	require.NoError(t, err)

	p, ok := pf.Find("users")
	require.True(t, ok)
	assert.Equal(t, 50.0, p.ColorHash().HSL("anything").L)

	_, ok = pf.Find("nope")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	for name, content := range map[string]string{
		"not toml":       `{"palette": []}`,
		"unnamed":        "[[palette]]\nmatch = [\"*\"]\n",
		"duplicate name": "[[palette]]\nname = \"a\"\n\n[[palette]]\nname = \"a\"\n",
		"bad glob":       "[[palette]]\nname = \"a\"\nmatch = [\"[\"]\n",
		"bad hue range":  "[[palette]]\nname = \"a\"\nhue_ranges = [[30, 90, 120]]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestParseEmptyCandidateList(t *testing.T) {
	_, err := Parse([]byte("[[palette]]\nname = \"a\"\nsaturations = []\n"))
	var invalid *colorhash.InvalidConfigurationError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "saturation", invalid.Facet)
}
