package web

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/alert-banner/internal/banner"
)

// CSS returns the geometry rules of the banner stylesheet. The wide layout
// is the default and the stacked layout applies below the breakpoint.
// Banners built for a known viewport carry ab-narrow or ab-wide, which pin
// their layout whatever the window width.
func CSS() string {
	var sb strings.Builder

	wide, narrow := banner.MetricsFor(0), banner.MetricsFor(banner.Breakpoint)

	writeMetrics(&sb, "", wide, banner.Metrics{})

	fmt.Fprintf(&sb, "@media (max-width: %dpx) {\n", banner.Breakpoint)
	writeMetrics(&sb, "", narrow, banner.Metrics{})
	sb.WriteString("}\n")

	writeMetrics(&sb, ".ab-narrow", narrow, banner.Metrics{})
	writeMetrics(&sb, ".ab-wide", wide, narrow)
	return sb.String()
}

// writeMetrics emits one rule per region. Properties set by undo but not
// by m are written with their initial values, so a scoped rule can cancel
// what the media query applied.
func writeMetrics(sb *strings.Builder, scope string, m, undo banner.Metrics) {
	sel := func(class string) string {
		if scope == "" {
			return "." + class
		}
		if class == "ab" {
			return ".ab" + scope
		}
		return scope + " ." + class
	}

	writeRule(sb, sel("ab"), m.Container, undo.Container)
	writeRule(sb, sel("ab-icon"), m.Icon, undo.Icon)
	writeRule(sb, sel("ab-content"), m.Content, undo.Content)
	writeRule(sb, sel("ab-actions"), m.Actions, undo.Actions)
	writeRule(sb, sel("ab-action"), m.Action, undo.Action)
	writeRule(sb, sel("ab-close"), m.Close, undo.Close)
}

func writeRule(sb *strings.Builder, selector string, l, undo banner.Layout) {
	decls := []string{"padding: " + spacing(l.Padding)}
	switch {
	case l.Direction != "":
		decls = append(decls, "flex-direction: "+string(l.Direction))
	case undo.Direction != "":
		decls = append(decls, "flex-direction: row")
	}
	switch {
	case l.Gap > 0:
		decls = append(decls, fmt.Sprintf("gap: %dpx", l.Gap))
	case undo.Gap > 0:
		decls = append(decls, "gap: 0")
	}
	if l.Grow {
		decls = append(decls, "flex: 1 1 auto")
	}
	switch {
	case l.FullWidth:
		decls = append(decls, "width: 100%")
	case undo.FullWidth:
		decls = append(decls, "width: auto")
	}
	switch {
	case l.JustifyEnd:
		decls = append(decls, "justify-content: flex-end")
	case undo.JustifyEnd:
		decls = append(decls, "justify-content: flex-start")
	}
	if l.MinHeight > 0 {
		decls = append(decls, fmt.Sprintf("min-height: %dpx", l.MinHeight))
	}
	if l.BorderRadius > 0 {
		decls = append(decls, fmt.Sprintf("border-radius: %dpx", l.BorderRadius))
	}
	fmt.Fprintf(sb, "%s { %s; }\n", selector, strings.Join(decls, "; "))
}
