package models

// Spacing holds box offsets in logical pixels
type Spacing struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// Pad builds a Spacing from one to four values using CSS shorthand order.
// Pad(6, 16) is 6px vertical, 16px horizontal.
func Pad(values ...int) Spacing {
	switch len(values) {
	case 0:
		return Spacing{}
	case 1:
		return Spacing{values[0], values[0], values[0], values[0]}
	case 2:
		return Spacing{values[0], values[1], values[0], values[1]}
	case 3:
		return Spacing{values[0], values[1], values[2], values[1]}
	default:
		return Spacing{values[0], values[1], values[2], values[3]}
	}
}

// Horizontal returns left + right
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// StylePatch is the caller styling merged onto the banner container last.
// Colors are deliberately absent so the severity/variant palette always holds.
type StylePatch struct {
	MaxWidth     int      // 0 leaves the width unconstrained
	MinHeight    int      // 0 keeps the default
	Margin       *Spacing // nil keeps the default
	Padding      *Spacing // nil keeps the default
	BorderRadius *int     // nil keeps the default
}

// IsZero reports whether the patch changes nothing
func (p StylePatch) IsZero() bool {
	return p.MaxWidth == 0 && p.MinHeight == 0 && p.Margin == nil && p.Padding == nil && p.BorderRadius == nil
}
