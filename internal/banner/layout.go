package banner

import "github.com/ngmaloney/alert-banner/internal/models"

// Breakpoint is the widest viewport, in logical pixels, that still gets
// the stacked (column) layout
const Breakpoint = 600

// FontFamily is the font stack of every text node
const FontFamily = "Roboto, -apple-system, Roboto, Helvetica, sans-serif"

const (
	IconSize      = 22
	CloseIconSize = 20
)

var (
	titleType = Typography{
		Size:          16,
		Weight:        500,
		LineHeight:    "150%",
		LetterSpacing: "0.15px",
	}
	descriptionType = Typography{
		Size:          14,
		Weight:        400,
		LineHeight:    "143%",
		LetterSpacing: "0.17px",
	}
	actionType = Typography{
		Size:          13,
		Weight:        500,
		LineHeight:    "22px",
		LetterSpacing: "0.46px",
		Uppercase:     true,
	}
)

// Metrics is the geometry of every region for one side of the breakpoint
type Metrics struct {
	Container Layout
	Icon      Layout
	Content   Layout
	Actions   Layout
	Action    Layout
	Close     Layout
}

var wideMetrics = Metrics{
	Container: Layout{
		Direction:    Row,
		Padding:      models.Pad(6, 16),
		MinHeight:    48,
		BorderRadius: 4,
	},
	Icon:    Layout{Padding: models.Pad(7, 12, 7, 0)},
	Content: Layout{Direction: Column, Padding: models.Pad(8, 0), Gap: 4, Grow: true},
	Actions: Layout{Padding: models.Pad(4, 0, 0, 16)},
	Action:  Layout{Padding: models.Pad(4, 5), BorderRadius: 4},
	Close:   Layout{Padding: models.Pad(5), BorderRadius: 100},
}

var narrowMetrics = Metrics{
	Container: Layout{
		Direction:    Column,
		Padding:      models.Pad(8, 12),
		Gap:          8,
		MinHeight:    48,
		BorderRadius: 4,
	},
	Icon:    Layout{Padding: models.Pad(4, 8, 4, 0)},
	Content: Layout{Direction: Column, Padding: models.Pad(8, 0), Gap: 4, Grow: true},
	Actions: Layout{Padding: models.Pad(4, 0), FullWidth: true, JustifyEnd: true},
	Action:  Layout{Padding: models.Pad(4, 5), BorderRadius: 4},
	Close:   Layout{Padding: models.Pad(5), BorderRadius: 100},
}

// Narrow reports whether a viewport width selects the stacked layout.
// Zero means the width is unknown and keeps the wide layout.
func Narrow(viewport int) bool {
	return viewport > 0 && viewport <= Breakpoint
}

// MetricsFor returns the region geometry for a viewport width
func MetricsFor(viewport int) Metrics {
	if Narrow(viewport) {
		return narrowMetrics
	}
	return wideMetrics
}

func (l Layout) patched(p models.StylePatch) Layout {
	if p.MaxWidth > 0 {
		l.MaxWidth = p.MaxWidth
	}
	if p.MinHeight > 0 {
		l.MinHeight = p.MinHeight
	}
	if p.Margin != nil {
		l.Margin = *p.Margin
	}
	if p.Padding != nil {
		l.Padding = *p.Padding
	}
	if p.BorderRadius != nil {
		l.BorderRadius = *p.BorderRadius
	}
	return l
}
