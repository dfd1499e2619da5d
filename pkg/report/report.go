// Package report prints registered deposits for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/amirasaad/oilfield/pkg/mapper"
	"github.com/amirasaad/oilfield/pkg/registry"
	"github.com/fatih/color"
)

const separator = "---------------------------"

// Printer renders deposits to a writer.
type Printer struct {
	w     io.Writer
	label *color.Color
	title *color.Color
	fail  *color.Color
}

// NewPrinter returns a Printer writing to w. Colour escape codes are emitted
// only when colored is true.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:     w,
		label: color.New(color.FgCyan),
		title: color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.label, p.title, p.fail} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Show prints the instance number and attributes of a registered deposit.
func (p *Printer) Show(e *registry.Entry) error {
	d := e.Deposit
	income := "n/a"
	if v, err := d.NetIncome(); err == nil {
		income = v.StringFixed(2)
	}
	lines := []struct{ label, value string }{
		{"Instance Number", strconv.Itoa(e.Number)},
		{"Name", d.Name()},
		{"Discovery Year", strconv.Itoa(d.DiscoveryYear())},
		{"Category", d.Category().String()},
		{"Unit Cost", strconv.FormatFloat(d.UnitCost(), 'f', -1, 64)},
		{"Extracted Quantity", strconv.FormatFloat(d.ExtractedQuantity(), 'f', -1, 64)},
		{"Net Income", income},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%s:", l.label), l.value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, separator)
	return err
}

// ShowErrors prints the deposit's error log. Nothing is written for a deposit
// without errors.
func (p *Printer) ShowErrors(e *registry.Entry) error {
	if !e.Deposit.HasErrors() {
		return nil
	}
	if _, err := p.fail.Fprintf(p.w, "Errors for instance %d:\n", e.Number); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, e.Deposit.ErrorLog())
	return err
}

// Title prints a highlighted heading line.
func (p *Printer) Title(format string, args ...any) error {
	_, err := p.title.Fprintf(p.w, format+"\n", args...)
	return err
}

// Line prints an unstyled line.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

// JSON writes the entries as an indented JSON array.
func (p *Printer) JSON(entries []*registry.Entry) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(mapper.MapDepositEntriesToRead(entries))
}
