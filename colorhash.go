// Colorhash deterministically maps arbitrary strings to visually distinct
// colors. The same input always yields the same color, with no storage
// involved: a cryptographic hash of the input selects a hue, and picks
// saturation and lightness from small candidate lists.
//
// The zero value and [New] both use the default candidate lists. Builder
// methods return adjusted copies, so a ColorHash can be shared freely:
//
//	ch := colorhash.New().WithLightness(50)
//	fmt.Println(ch.Hex("some-username"))
package colorhash

// Default candidate lists. Three candidates each; 3 is coprime with
// hueResolution, which keeps saturation and lightness selection from
// cycling in step with hue as the hash value varies.
var (
	defaultSaturations = []float64{35, 50, 65}
	defaultLightnesses = []float64{35, 50, 65}
)

// hueResolution is the number of distinct hues available within a single
// configured hue range. 727 is prime.
const hueResolution = 727

// A HueRange is a half-open interval [Start, End) of hue degrees. Derived
// hues can approach but never reach End.
type HueRange struct {
	Start, End float64
}

// A ColorHash holds the candidate values that derived colors are drawn
// from. It is an immutable value: the With* methods return adjusted
// copies, and any copy may be used concurrently without coordination.
type ColorHash struct {
	saturations []float64
	lightnesses []float64
	hueRanges   []HueRange
}

// New returns a ColorHash with the default candidate lists: saturation and
// lightness each drawn from {35, 50, 65}, hue drawn from the full circle.
func New() ColorHash {
	return ColorHash{
		saturations: defaultSaturations,
		lightnesses: defaultLightnesses,
	}
}

// WithSaturation fixes saturation: every derived color will have exactly
// this saturation, in [0, 100].
func (ch ColorHash) WithSaturation(saturation float64) ColorHash {
	ch.saturations = []float64{saturation}
	return ch
}

// WithSaturations replaces the saturation candidate list. Each derived
// color takes one of the given values, in [0, 100]. For better
// distribution, use a list whose length is prime. Calling with no values
// restores the default list.
func (ch ColorHash) WithSaturations(saturations ...float64) ColorHash {
	ch.saturations = saturations
	return ch
}

// WithLightness fixes lightness: every derived color will have exactly
// this lightness, in [0, 100].
func (ch ColorHash) WithLightness(lightness float64) ColorHash {
	ch.lightnesses = []float64{lightness}
	return ch
}

// WithLightnesses replaces the lightness candidate list. Each derived
// color takes one of the given values, in [0, 100]. For better
// distribution, use a list whose length is prime. Calling with no values
// restores the default list.
func (ch ColorHash) WithLightnesses(lightnesses ...float64) ColorHash {
	ch.lightnesses = lightnesses
	return ch
}

// WithHueRange restricts hue to a single half-open range of degrees.
func (ch ColorHash) WithHueRange(r HueRange) ColorHash {
	ch.hueRanges = []HueRange{r}
	return ch
}

// WithHueRanges replaces the hue range list. Each derived color takes its
// hue from one of the given ranges; which one is decided solely by the
// hash value, so ranges may overlap. Calling with no ranges restores the
// default behavior, where hue is drawn from the full circle.
func (ch ColorHash) WithHueRanges(ranges ...HueRange) ColorHash {
	ch.hueRanges = ranges
	return ch
}

// FromCandidates builds a ColorHash from explicit candidate lists, for
// callers that assemble configuration from external data rather than the
// With* chain. Unlike the With* methods, which treat an empty list as a
// request for the default, FromCandidates rejects empty saturation or
// lightness lists with an *InvalidConfigurationError. Hue ranges may be
// empty; that is the full-circle default.
func FromCandidates(saturations, lightnesses []float64, hueRanges []HueRange) (ColorHash, error) {
	if len(saturations) == 0 {
		return ColorHash{}, &InvalidConfigurationError{Facet: "saturation"}
	}
	if len(lightnesses) == 0 {
		return ColorHash{}, &InvalidConfigurationError{Facet: "lightness"}
	}
	return ColorHash{
		saturations: append([]float64(nil), saturations...),
		lightnesses: append([]float64(nil), lightnesses...),
		hueRanges:   append([]HueRange(nil), hueRanges...),
	}, nil
}

// An InvalidConfigurationError reports a candidate list that cannot be
// used for derivation.
type InvalidConfigurationError struct {
	// Facet is the empty candidate list: "saturation" or "lightness".
	Facet string
}

func (e *InvalidConfigurationError) Error() string {
	return "colorhash: empty " + e.Facet + " candidate list"
}

// Validate reports an *InvalidConfigurationError if a candidate list is
// unusable. A ColorHash built with New and the With* methods is always
// valid; Validate exists for configuration assembled from external data.
func (ch ColorHash) Validate() error {
	_, _, err := ch.candidates()
	return err
}

func (ch ColorHash) candidates() (saturations, lightnesses []float64, err error) {
	saturations, lightnesses = ch.saturations, ch.lightnesses
	// The zero ColorHash and `WithSaturations()` both leave a facet
	// empty; both mean "use the default".
	if saturations == nil {
		saturations = defaultSaturations
	}
	if lightnesses == nil {
		lightnesses = defaultLightnesses
	}
	if len(saturations) == 0 {
		return nil, nil, &InvalidConfigurationError{Facet: "saturation"}
	}
	if len(lightnesses) == 0 {
		return nil, nil, &InvalidConfigurationError{Facet: "lightness"}
	}
	return saturations, lightnesses, nil
}

// HSL derives the color for input.
//
// Hue is a real number in [0, 360). With hue ranges configured, the hash
// picks a range and a position within it at hueResolution granularity;
// otherwise hue is the hash modulo 359. Saturation and lightness are
// always exact members of their candidate lists, never interpolated.
func (ch ColorHash) HSL(input string) HSL {
	saturations, lightnesses, err := ch.candidates()
	if err != nil {
		// Only reachable through a non-nil empty list smuggled into
		// the With* chain; Validate would have reported it.
		panic(err)
	}

	h := digest(input)

	var hue float64
	if n := uint32(len(ch.hueRanges)); n > 0 {
		r := ch.hueRanges[h%n]
		pos := h / n % hueResolution
		hue = r.Start + float64(pos)*(r.End-r.Start)/hueResolution
	} else {
		// 359, not 360: like the range case, the top of the circle
		// is never produced. 359 is prime.
		hue = float64(h % 359)
	}

	// The divisor 360 is a fixed partition of the 32-bit space. It is
	// unrelated to the hue branch's divisors, which keeps saturation
	// and lightness selection decorrelated from the hue range count.
	s := uint32(len(saturations))
	saturation := saturations[h/360%s]
	lightness := lightnesses[h/360/s%uint32(len(lightnesses))]

	return HSL{H: hue, S: saturation, L: lightness}
}

// RGB derives the color for input and converts it to RGB.
func (ch ColorHash) RGB(input string) RGB {
	return ch.HSL(input).RGB()
}

// Hex derives the color for input and formats it as six lowercase hex
// digits, without a leading "#".
func (ch ColorHash) Hex(input string) string {
	return ch.HSL(input).Hex()
}
