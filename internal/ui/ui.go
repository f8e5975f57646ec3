// Package ui renders engine results for the command line.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/strata/internal/groups"
	"github.com/papapumpkin/strata/internal/item"
	"github.com/papapumpkin/strata/internal/layout"
	"github.com/papapumpkin/strata/internal/snapshot"
)

// Printer writes results to Out and status lines to Err. Styles degrade to
// plain text when the writer is not a terminal.
type Printer struct {
	Out io.Writer
	Err io.Writer

	heading lipgloss.Style
	dim     lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	accent  lipgloss.Style
}

// New returns a printer on stdout and stderr.
func New() *Printer {
	return NewWriter(os.Stdout, os.Stderr)
}

// NewWriter returns a printer on the given writers.
func NewWriter(out, errw io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		Out:     out,
		Err:     errw,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		dim:     r.NewStyle().Faint(true),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", p.bad.Render("error:"), msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", p.warn.Render("warning:"), msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Err, p.dim.Render(msg))
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.Err, "%s %s\n", p.good.Render("✓"), msg)
}

// Categories lists every category with its icon and stack count.
func (p *Printer) Categories(reg *groups.Registry, snap *snapshot.Snapshot) {
	fmt.Fprintf(p.Out, "%s %s\n", p.heading.Render("categories"), p.dim.Render(snap.Key().String()))
	for i, c := range reg.Categories() {
		icon := c.Icon().ID().String()
		if c.Icon().IsEmpty() {
			icon = "(none)"
		}
		fmt.Fprintf(p.Out, "  %2d. %-28s %5d  %s\n",
			i+1, c.ID(), len(snap.Stacks(c.ID())), p.dim.Render("icon "+icon))
	}
}

// Partition prints every category's stacks in display order.
func (p *Printer) Partition(reg *groups.Registry, snap *snapshot.Snapshot) {
	for _, c := range reg.Categories() {
		p.Category(c, groups.Dedupe(snap.Stacks(c.ID())))
	}
	p.Summary(snap)
}

// Category prints one category's stacks.
func (p *Printer) Category(c *layout.Category, stacks []item.Stack) {
	fmt.Fprintf(p.Out, "%s %s\n", p.heading.Render(c.ID().String()), p.dim.Render(fmt.Sprintf("(%d)", len(stacks))))
	if len(stacks) == 0 {
		fmt.Fprintln(p.Out, p.dim.Render("  (empty)"))
		return
	}
	for _, s := range stacks {
		fmt.Fprintf(p.Out, "  %s\n", s.ID())
	}
}

// Summary prints the extraction accounting for snap.
func (p *Printer) Summary(snap *snapshot.Snapshot) {
	part := snap.Partition()
	fmt.Fprintf(p.Err, "%s %d captured, %d claimed, %d omitted, %d left in pools\n",
		p.dim.Render("snapshot "+snap.ID()[:8]+":"),
		part.Initial(), part.Claimed(), part.Omitted, part.RemainingTotal())
}

// Explain prints an explanation of one item.
func (p *Printer) Explain(ex groups.Explanation) {
	fmt.Fprintln(p.Out, p.heading.Render(ex.ID.String()))
	if !ex.Known {
		fmt.Fprintln(p.Out, p.warn.Render("  not in catalog"))
	}
	row := func(label, value string) {
		if value == "" {
			value = p.dim.Render("-")
		}
		fmt.Fprintf(p.Out, "  %-10s %s\n", label+":", value)
	}
	row("variant", ex.Keys.Variant)
	row("stripped", ex.Keys.Stripped)
	row("shape", ex.Keys.Shape)
	row("family", ex.Keys.Family)
	row("wood", familyLine(ex.Wood))
	row("stone", familyLine(ex.Stone))
	row("copper", familyLine(ex.Copper))
	if ex.Omitted {
		row("omitted", p.bad.Render("yes")+" ("+ex.OmitBy+")")
	} else {
		row("omitted", "no")
	}
	if ex.Category.IsZero() {
		row("category", "")
		return
	}
	row("category", p.accent.Render(ex.Category.String())+fmt.Sprintf(" #%d", ex.Position+1))
}

func familyLine(k groups.FamilyKeys) string {
	if k.Base == "" && k.Shape == "" {
		return ""
	}
	parts := []string{"base=" + k.Base, "shape=" + k.Shape}
	if k.Variant != "" {
		parts = append(parts, "variant="+k.Variant)
	}
	return strings.Join(parts, " ")
}

// Validation prints the result of validating configuration inputs.
func (p *Printer) Validation(name string, err error) {
	if err == nil {
		p.Success(name + " is valid")
		return
	}
	fmt.Fprintf(p.Err, "%s %s\n", p.bad.Render("✗ "+name+":"), err)
}

// Pools prints pool sizes sorted by name.
func (p *Printer) Pools(pools layout.Pools) {
	fmt.Fprintln(p.Out, p.heading.Render("pools"))
	for _, n := range pools.Names() {
		fmt.Fprintf(p.Out, "  %-32s %5d\n", n, pools[n].Len())
	}
}

// CacheStats prints when the published snapshot was built and the cache
// counters.
func (p *Printer) CacheStats(c *snapshot.Cache) {
	st := c.Stats()
	built := "no snapshot"
	if snap := c.Current(); snap != nil {
		built = "built " + snap.BuiltAt().Format("15:04:05.000")
	}
	fmt.Fprintf(p.Err, "%s %d builds, %d hits, %d invalidations\n",
		p.dim.Render("cache "+built+":"), st.Builds, st.Hits, st.Invalidations)
}

// Stacks prints a titled list of stacks.
func (p *Printer) Stacks(title string, stacks []item.Stack) {
	fmt.Fprintf(p.Out, "%s %s\n", p.heading.Render(title), p.dim.Render(fmt.Sprintf("(%d)", len(stacks))))
	for i, s := range stacks {
		fmt.Fprintf(p.Out, "  %2d. %s\n", i+1, s.ID())
	}
}
