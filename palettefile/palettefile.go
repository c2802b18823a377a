// Package palettefile loads palettes.toml files, which route identifiers
// to colorhash configurations by glob pattern. A palette file holds named
// palettes; each palette overrides some facets of the default
// configuration and lists the identifier patterns it applies to:
//
//	[[palette]]
//	name = "tags"
//	match = ["tag-*", "label/**"]
//	saturations = [90, 100]
//	lightnesses = [70, 80]
//	hue_ranges = [[30, 90], [180, 210]]
//
//	[[palette]]
//	name = "everything-else"
//
// Palettes are tried in file order and the first match wins. A palette
// with no match patterns matches every identifier, so a catch-all goes
// last. Identifiers that match no palette use the default configuration.
package palettefile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"github.com/amonks/colorhash"
)

// A Palettefile is a parsed, compiled palettes.toml. You can load one
// from disk with Load, or if you want, build one in code and call
// Compile yourself.
type Palettefile struct {
	Palettes []Palette `toml:"palette"`
}

// A Palette names one colorhash configuration and the identifier
// patterns that select it. Omitted facets keep their defaults. An
// explicitly empty saturation or lightness list is a configuration
// error, reported by Compile.
type Palette struct {
	Name        string      `toml:"name"`
	Match       []string    `toml:"match"`
	Saturations []float64   `toml:"saturations"`
	Lightnesses []float64   `toml:"lightnesses"`
	HueRanges   [][]float64 `toml:"hue_ranges"`

	globs []glob.Glob
	hash  colorhash.ColorHash
}

// Load reads and compiles the palette file at path.
func Load(path string) (Palettefile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return Palettefile{}, err
	}
	pf, err := Parse(bs)
	if err != nil {
		return Palettefile{}, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

// Parse parses and compiles palette file content.
func Parse(bs []byte) (Palettefile, error) {
	var pf Palettefile
	if err := toml.Unmarshal(bs, &pf); err != nil {
		return Palettefile{}, err
	}
	if err := pf.Compile(); err != nil {
		return Palettefile{}, err
	}
	return pf, nil
}

// Compile validates every palette, compiles its match patterns, and
// builds its colorhash configuration. Load and Parse call Compile; only
// Palettefiles assembled in code need to call it directly.
func (pf *Palettefile) Compile() error {
	seen := map[string]struct{}{}
	for i := range pf.Palettes {
		p := &pf.Palettes[i]
		if p.Name == "" {
			return fmt.Errorf("palette %d has no name", i)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("duplicate palette %q", p.Name)
		}
		seen[p.Name] = struct{}{}

		p.globs = make([]glob.Glob, 0, len(p.Match))
		for _, pattern := range p.Match {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return fmt.Errorf("palette %q: pattern %q: %w", p.Name, pattern, err)
			}
			p.globs = append(p.globs, g)
		}

		hash, err := p.compile()
		if err != nil {
			return fmt.Errorf("palette %q: %w", p.Name, err)
		}
		p.hash = hash
	}
	return nil
}

func (p *Palette) compile() (colorhash.ColorHash, error) {
	ch := colorhash.New()
	if p.Saturations != nil {
		ch = ch.WithSaturations(p.Saturations...)
	}
	if p.Lightnesses != nil {
		ch = ch.WithLightnesses(p.Lightnesses...)
	}
	ranges := make([]colorhash.HueRange, 0, len(p.HueRanges))
	for _, r := range p.HueRanges {
		if len(r) != 2 {
			return colorhash.ColorHash{}, fmt.Errorf("hue range %v must be a [start, end] pair", r)
		}
		ranges = append(ranges, colorhash.HueRange{Start: r[0], End: r[1]})
	}
	ch = ch.WithHueRanges(ranges...)
	return ch, ch.Validate()
}

// ColorHash returns the compiled configuration for the palette.
func (p Palette) ColorHash() colorhash.ColorHash {
	return p.hash
}

// Matches reports whether the palette applies to input. A palette with no
// match patterns applies to everything.
func (p Palette) Matches(input string) bool {
	if len(p.globs) == 0 {
		return true
	}
	for _, g := range p.globs {
		if g.Match(input) {
			return true
		}
	}
	return false
}

// For routes input to the first palette that matches it, returning that
// palette's configuration and name. Inputs that match no palette get the
// default configuration and an empty name.
func (pf Palettefile) For(input string) (colorhash.ColorHash, string) {
	for _, p := range pf.Palettes {
		if p.Matches(input) {
			return p.hash, p.Name
		}
	}
	return colorhash.New(), ""
}

// Find returns the named palette.
func (pf Palettefile) Find(name string) (Palette, bool) {
	for _, p := range pf.Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}
