package colorhash_test

import (
	"fmt"

	"github.com/amonks/colorhash"
)

// The zero configuration is ready to use: the same input yields the same
// color on every call, in every process.
func Example() {
	ch := colorhash.New()

	fmt.Println(ch.HSL("hello world"))
	fmt.Println(ch.Hex("hello world"))
	// Output:
	// hsl(126, 65%, 65%)
	// 6ce077
}

// Builder methods return adjusted copies, so configurations can be
// derived from one another without affecting the original.
func ExampleColorHash_WithHueRanges() {
	// Only greens and blues, kept light enough for dark text.
	ch := colorhash.New().
		WithHueRanges(colorhash.HueRange{90, 150}, colorhash.HueRange{180, 240}).
		WithLightness(70)

	hsl := ch.HSL("some-username")
	fmt.Println(hsl.L)
	// Output:
	// 70
}
