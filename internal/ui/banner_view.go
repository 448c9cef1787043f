package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ngmaloney/alert-banner/internal/banner"
	"github.com/ngmaloney/alert-banner/internal/models"
)

// A terminal cell stands in for this many logical pixels
const (
	CellWidth  = 8
	CellHeight = 16
)

// cols converts logical px to terminal columns
func cols(px int) int {
	return (px + CellWidth/2) / CellWidth
}

// rows converts logical px to terminal lines
func rows(px int) int {
	return (px + CellHeight/2) / CellHeight
}

// Glyph returns the terminal glyph drawn for an icon
func Glyph(icon models.Icon) string {
	return icon.Glyph()
}

// RenderOptions controls how a banner is drawn in the terminal
type RenderOptions struct {
	Width int            // total columns, 0 for the natural width
	Focus banner.Control // control drawn as focused, if any
}

// RenderBanner draws a banner's visual tree with lipgloss
func RenderBanner(b *banner.Banner, opts RenderOptions) string {
	root := b.Tree()

	surface := lipgloss.NewStyle().
		Background(lipgloss.Color(root.Background)).
		Foreground(lipgloss.Color(root.Color))

	box := surface.Padding(cells(root.Layout.Padding))
	if root.Border.Width > 0 {
		box = box.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(root.Border.Color)).
			BorderBackground(lipgloss.Color(root.Background))
	}
	if m := root.Layout.Margin; m != (models.Spacing{}) {
		box = box.Margin(cells(m))
	}

	width := opts.Width
	if limit := cols(root.Layout.MaxWidth); limit > 0 && (width == 0 || limit < width) {
		width = limit
	}
	inner := 0
	if width > 0 {
		inner = max(width-box.GetHorizontalFrameSize(), 1)
		box = box.Width(inner + box.GetHorizontalPadding())
	}

	var body string
	if root.Layout.Direction == banner.Column {
		body = renderStacked(root, surface, inner, opts.Focus)
	} else {
		body = renderRow(root, surface, inner, opts.Focus)
	}

	if h := rows(root.Layout.MinHeight) - box.GetVerticalPadding(); h > lipgloss.Height(body) {
		body = fill(surface, body, lipgloss.Width(body), h)
	}

	out := box.Render(body)
	if width > 0 && lipgloss.Width(out) > width {
		out = clip(out, width)
	}
	return out
}

// clip cuts every line of s to w columns, keeping its styling
func clip(s string, w int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, w, "")
	}
	return strings.Join(lines, "\n")
}

func renderRow(root banner.Node, surface lipgloss.Style, inner int, focus banner.Control) string {
	icon, _ := root.Child(banner.KindIconRegion)
	content, _ := root.Child(banner.KindContentRegion)
	actions, hasActions := root.Child(banner.KindActionsRegion)

	iconBlock := renderIconRegion(icon, surface)
	actionsBlock := ""
	if hasActions {
		actionsBlock = renderActionsRegion(actions, surface, 0, focus)
	}

	contentWidth := 0
	if inner > 0 {
		contentWidth = inner - lipgloss.Width(iconBlock) - lipgloss.Width(actionsBlock)
		if contentWidth < 1 {
			contentWidth = 1
		}
	}
	contentBlock := renderContentRegion(content, surface, contentWidth)

	blocks := []string{iconBlock, contentBlock}
	if hasActions {
		blocks = append(blocks, actionsBlock)
	}

	height := 0
	for _, b := range blocks {
		if h := lipgloss.Height(b); h > height {
			height = h
		}
	}
	for i, b := range blocks {
		blocks[i] = fill(surface, b, lipgloss.Width(b), height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func renderStacked(root banner.Node, surface lipgloss.Style, inner int, focus banner.Control) string {
	var blocks []string
	for _, region := range root.Children {
		switch region.Kind {
		case banner.KindIconRegion:
			blocks = append(blocks, renderIconRegion(region, surface))
		case banner.KindContentRegion:
			blocks = append(blocks, renderContentRegion(region, surface, inner))
		case banner.KindActionsRegion:
			blocks = append(blocks, renderActionsRegion(region, surface, inner, focus))
		}
	}

	width := inner
	if width == 0 {
		for _, b := range blocks {
			if w := lipgloss.Width(b); w > width {
				width = w
			}
		}
	}

	gap := rows(root.Layout.Gap)
	var out []string
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			out = append(out, fill(surface, "", width, gap))
		}
		out = append(out, fill(surface, b, width, lipgloss.Height(b)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func renderIconRegion(region banner.Node, surface lipgloss.Style) string {
	var glyph string
	for _, icon := range region.Children {
		glyph += surface.Foreground(lipgloss.Color(icon.Color)).Render(Glyph(icon.Icon))
	}
	return surface.Padding(cells(region.Layout.Padding)).Render(glyph)
}

func renderContentRegion(region banner.Node, surface lipgloss.Style, width int) string {
	var lines []string
	for i, n := range region.Children {
		if i > 0 && rows(region.Layout.Gap) > 0 {
			lines = append(lines, "")
		}
		style := surface.Foreground(lipgloss.Color(n.Color))
		if n.Type.Weight >= 500 {
			style = style.Bold(true)
		}
		if width > 0 {
			style = style.Width(width)
		}
		lines = append(lines, style.Render(n.Text))
	}

	style := surface.Padding(cells(region.Layout.Padding))
	if width > 0 {
		style = style.Width(width)
	}
	// an empty region still takes its padding, like the source layout
	return style.Render(strings.Join(lines, "\n"))
}

func renderActionsRegion(region banner.Node, surface lipgloss.Style, width int, focus banner.Control) string {
	var controls []string
	for _, n := range region.Children {
		style := surface.
			Foreground(lipgloss.Color(n.Color)).
			Padding(0, cols(n.Layout.Padding.Right))
		if n.Control == focus && focus != banner.ControlNone {
			style = style.Reverse(true)
		}

		switch n.Kind {
		case banner.KindActionButton:
			label := n.Text
			if n.Type.Uppercase {
				label = strings.ToUpper(label)
			}
			controls = append(controls, style.Bold(true).Render("["+label+"]"))
		case banner.KindCloseButton:
			glyph := Glyph(models.IconClose)
			if len(n.Children) > 0 {
				glyph = Glyph(n.Children[0].Icon)
			}
			controls = append(controls, style.Render(glyph))
		}
	}

	style := surface.Padding(cells(region.Layout.Padding))
	if region.Layout.FullWidth && width > 0 {
		style = style.Width(width)
	}
	if region.Layout.JustifyEnd {
		style = style.Align(lipgloss.Right)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, controls...))
}

// cells converts a px spacing into lipgloss padding arguments (top, right,
// bottom, left)
func cells(s models.Spacing) (int, int, int, int) {
	return rows(s.Top), cols(s.Right), rows(s.Bottom), cols(s.Left)
}

// fill pads block with the surface background up to w×h cells
func fill(surface lipgloss.Style, block string, w, h int) string {
	return surface.Width(w).Height(h).Render(block)
}
