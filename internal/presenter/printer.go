package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const bannerWidth = 80

// PrinterConfig holds configuration for the status printer.
type PrinterConfig struct {
	Out     io.Writer
	NoColor bool
	Quiet   bool
}

// Printer writes the banner, footer and status lines around command output.
type Printer struct {
	out       io.Writer
	useColors bool
	quiet     bool
}

// NewPrinter creates a new status printer. Colors are disabled when
// NO_COLOR is set, TERM is dumb or cfg.NoColor is true.
func NewPrinter(cfg PrinterConfig) *Printer {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Printer{
		out:       out,
		useColors: !cfg.NoColor && colorsAllowed(),
		quiet:     cfg.Quiet,
	}
}

func colorsAllowed() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Out returns the writer the printer writes to.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Banner prints a ruled header holding a title and an optional subtitle.
func (p *Printer) Banner(title, subtitle string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out)
	p.ruled(title, subtitle)
}

// Footer prints a ruled closing message and an optional second line.
func (p *Printer) Footer(message, subtitle string) {
	if p.quiet {
		return
	}
	p.ruled(message, subtitle)
}

func (p *Printer) ruled(title, subtitle string) {
	rule := strings.Repeat("#", bannerWidth)
	fmt.Fprintln(p.out, rule)
	if p.useColors {
		color.New(color.Bold, color.FgCyan).Fprintln(p.out, "## "+title)
	} else {
		fmt.Fprintln(p.out, "## "+title)
	}
	if subtitle != "" {
		fmt.Fprintln(p.out, "## "+subtitle)
	}
	fmt.Fprintln(p.out, rule)
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

// Info prints a neutral line.
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Error prints a failure line. It is written even in quiet mode.
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.out, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[Error] "+format+"\n", args...)
	}
}
