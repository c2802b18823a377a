// Command colorhash gives stable, visually distinct colors to arbitrary
// identifiers. Pass identifiers as arguments or on stdin to get swatch
// lines; run it with no arguments on a terminal for an interactive
// playground.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/amonks/colorhash"
	"github.com/amonks/colorhash/internal/watcher"
	"github.com/amonks/colorhash/palettefile"
	"github.com/amonks/colorhash/printer"
	"github.com/amonks/colorhash/tui"
)

var (
	fUI       = flag.String("ui", "", "Force a particular ui. Legal values are 'tui' and 'printer'.")
	fPalettes = flag.String("palettes", "", "Load palettes from the given palettes.toml file.")
	fPalette  = flag.String("palette", "", "Use the named palette for every identifier, ignoring match rules. Requires -palettes.")
	fHex      = flag.Bool("hex", false, "Print bare lowercase hex values only, one per line.")
	fWatch    = flag.Bool("watch", false, "Re-render whenever the palettes file changes.")

	fVersion = flag.Bool("version", false, "Display the version and exit.")
	fHelp    = flag.Bool("help", false, "Display the help text and exit.")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Italic(true)
)

func main() {
	flag.Parse()

	if *fVersion {
		fmt.Println(versionText())
		os.Exit(0)
	} else if *fHelp {
		fmt.Println("\n" + helpText())
		os.Exit(0)
	}

	var palettes *palettefile.Palettefile
	if *fPalettes != "" {
		pf, err := palettefile.Load(*fPalettes)
		if err != nil {
			fmt.Println("Error loading palettes:")
			fmt.Println(err)
			os.Exit(1)
		}
		palettes = &pf
	}

	hash := colorhash.New()
	if *fPalette != "" {
		if palettes == nil {
			fmt.Println("-palette requires -palettes.")
			os.Exit(1)
		}
		p, ok := palettes.Find(*fPalette)
		if !ok {
			fmt.Printf("No palette named %q in %s.\n", *fPalette, *fPalettes)
			os.Exit(1)
		}
		hash = p.ColorHash()
		// Forcing one palette disables routing, and with it live
		// reload; reloading would bring routing back.
		palettes = nil
		*fWatch = false
	}

	inputs := flag.Args()
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	useTUI := false
	switch *fUI {
	case "tui":
		useTUI = true
	case "printer", "":
		useTUI = *fUI == "" && len(inputs) == 0 && stdinTTY && stdoutTTY && !*fHex
	default:
		fmt.Println("Invalid value for flag -ui. Legal values are 'tui' and 'printer'.")
		os.Exit(1)
	}

	if useTUI {
		err := tui.Start(ctx, os.Stdin, os.Stdout, tui.Options{
			Hash:         hash,
			Palettes:     palettes,
			PalettesPath: *fPalettes,
			Watch:        *fWatch,
		})
		if err != nil && err != context.Canceled {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	os.Exit(runPrinter(ctx, hash, palettes, inputs, stdoutTTY))
}

func runPrinter(ctx context.Context, hash colorhash.ColorHash, palettes *palettefile.Palettefile, inputs []string, stdoutTTY bool) int {
	var p *printer.Printer
	if stdoutTTY && termenv.ColorProfile() != termenv.Ascii {
		p = printer.New(os.Stdout)
	} else {
		p = printer.NewPlain(os.Stdout)
	}

	printOne := func(input string) {
		ch, palette := hash, ""
		if palettes != nil {
			ch, palette = palettes.For(input)
		}
		if *fHex {
			fmt.Println(ch.Hex(input))
			return
		}
		p.Print(input, ch.HSL(input), palette)
	}

	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			inputs = append(inputs, line)
			printOne(line)
		}
		if err := scanner.Err(); err != nil {
			fmt.Printf("Error reading stdin: %s\n", err)
			return 1
		}
	} else {
		for _, input := range inputs {
			printOne(input)
		}
	}

	if !*fWatch || *fPalettes == "" || palettes == nil {
		return 0
	}

	// Keep re-rendering the same identifiers as the palettes file is
	// edited.
	events, stop, err := watcher.Watch(*fPalettes)
	if err != nil {
		fmt.Printf("Error watching %s: %s\n", *fPalettes, err)
		return 1
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return 0
		case _, ok := <-events:
			if !ok {
				return 0
			}
			pf, err := palettefile.Load(*fPalettes)
			if err != nil {
				fmt.Println(err)
				continue
			}
			palettes = &pf
			fmt.Println()
			for _, input := range inputs {
				printOne(input)
			}
		}
	}
}

func init() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, usageText())
		fmt.Fprintln(w, flagText())
		os.Exit(0)
	}
}

func helpText() string {
	b := &strings.Builder{}
	b.WriteString("Colorhash derives stable, visually distinct colors from identifiers.\n")
	b.WriteString("The same input always produces the same color, with no storage involved.\n")
	b.WriteString("For documentation and the latest version, please visit GitHub:\n")
	b.WriteString("\n")
	b.WriteString("  https://github.com/amonks/colorhash\n")
	b.WriteString("\n")
	b.WriteString(usageText())
	b.WriteString("\n")
	b.WriteString(exampleText())
	b.WriteString("\n")
	b.WriteString(flagText())
	b.WriteString("\n")
	b.WriteString(versionText())

	return b.String()
}

func usageText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("USAGE"))
	b.WriteString("  colorhash [flags] [identifier...]\n")
	b.WriteString("\n")
	b.WriteString("  With no identifiers, colorhash reads them from stdin, one per\n")
	b.WriteString("  line; or, on a terminal, opens an interactive playground.\n")
	return b.String()
}

func exampleText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("EXAMPLES"))
	for _, ex := range [][2]string{
		{`colorhash alice bob carol`, "swatch lines for three identifiers"},
		{`git tag | colorhash`, "colorize whatever another tool emits"},
		{`colorhash -hex alice`, "just the hex value, for scripts"},
		{`colorhash -palettes=palettes.toml -watch`, "tune palettes live"},
	} {
		fmt.Fprintf(b, "  %s\n", ex[0])
		fmt.Fprintf(b, "    %s\n", italicStyle.Render(ex[1]))
	}
	return b.String()
}

func flagText() string {
	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("FLAGS"))

	f := flag.CommandLine

	f.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&b, "  -%s", f.Name) // Two spaces before -; see next two comments.
		name, usage := flag.UnquoteUsage(f)
		if len(name) > 0 {
			b.WriteString("=")
			b.WriteString(name)
		}
		// Print the default value only if it differs to the zero value
		// for this flag type.
		if isZero := isZeroValue(f, f.DefValue); !isZero {
			fmt.Fprintf(&b, " (default %q)", f.DefValue)
		}
		b.WriteString("\n")

		usage = strings.ReplaceAll(usage, "\n", "\n    \t")
		usage = wordwrap.String(usage, 52)
		usage = indent.String(usage, 8)
		b.WriteString(usage)

		b.WriteString("\n")
	})
	return b.String()
}

// isZeroValue determines whether the string represents the zero
// value for a flag.
func isZeroValue(f *flag.Flag, value string) (ok bool) {
	// Build a zero value of the flag's Value type, and see if the
	// result of calling its String method equals the value passed in.
	// This works unless the Value type is itself an interface type.
	typ := reflect.TypeOf(f.Value)
	var z reflect.Value
	if typ.Kind() == reflect.Pointer {
		z = reflect.New(typ.Elem())
	} else {
		z = reflect.Zero(typ)
	}
	return value == z.Interface().(flag.Value).String()
}

func versionText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, headerStyle.Render("VERSION"))
	fmt.Fprintln(b, "  Version:", colorhash.Version())
	return b.String()
}
