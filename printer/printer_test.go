package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/amonks/colorhash"
)

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlain(&buf)
	p.Print("hello world", colorhash.HSL{H: 126, S: 65, L: 65}, "")
	p.Print("a", colorhash.HSL{H: 52, S: 35, L: 50}, "users")
	p.Print("b", colorhash.HSL{H: 258, S: 50, L: 65}, "")

	expected := strings.Join([]string{
		"6ce077  hsl(126, 65%, 65%)    hello world",
		"aca053  hsl(52, 35%, 50%)     a  [users]",
		"9479d2  hsl(258, 50%, 65%)    b",
		"",
	}, "\n")
	if got := buf.String(); got != expected {
		dmp := diffmatchpatch.New()
		t.Errorf("unexpected output:\n%s",
			dmp.DiffPrettyText(dmp.DiffMain(expected, got, false)))
	}
}
