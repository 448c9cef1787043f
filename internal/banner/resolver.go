package banner

import (
	"fmt"

	"github.com/ngmaloney/alert-banner/internal/models"
)

// Border is a solid outline. A zero Width means no border.
type Border struct {
	Width int    `yaml:"width,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// StyleEntry holds the resolved colors for one (severity, variant) pair
type StyleEntry struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Icon       string `yaml:"icon"`
	Border     Border `yaml:"border,omitempty"`
}

// HasBorder reports whether the entry draws an outline
func (e StyleEntry) HasBorder() bool {
	return e.Border.Width > 0
}

const white = "#FFFFFF"

// palette derives the three variants of a semantic severity from its
// saturated color, its dark text color and its tinted background
func palette(main, dark, tint string) [3]StyleEntry {
	return [3]StyleEntry{
		{Background: main, Text: white, Icon: white},
		{Background: white, Text: dark, Icon: main, Border: Border{Width: 1, Color: main}},
		{Background: tint, Text: dark, Icon: main},
	}
}

// styleTable is indexed by [severity-1][variant-1]
var styleTable = [...][3]StyleEntry{
	palette("#D32F2F", "#5F2120", "#FDEDED"),
	palette("#EF6C00", "#663C00", "#FFF4E5"),
	palette("#0288D1", "#014361", "#E5F6FD"),
	palette("#2E7D32", "#1E4620", "#EDF7ED"),
	{
		{Background: white, Text: "#000000", Icon: "#000000"},
		{Background: white, Text: "#000000", Icon: "#000000", Border: Border{Width: 1, Color: "#E0E0E0"}},
		{Background: white, Text: "#000000", Icon: "#000000"},
	},
}

var severityIcons = [...]models.Icon{
	models.IconErrorOutline,
	models.IconWarningAmber,
	models.IconInfoOutlined,
	models.IconCheckCircle,
	models.IconCircleOutlined,
}

// Resolve returns the colors for a severity and variant. Unset values
// resolve to their defaults; values outside the enumerations panic.
func Resolve(severity models.Severity, variant models.Variant) StyleEntry {
	s, v := mustSeverity(severity), mustVariant(variant)
	return styleTable[s-1][v-1]
}

// IconFor returns the icon shown for a severity. Variant never changes it.
func IconFor(severity models.Severity) models.Icon {
	return severityIcons[mustSeverity(severity)-1]
}

func mustSeverity(s models.Severity) models.Severity {
	s = s.Normalize()
	if !s.Valid() {
		panic(fmt.Sprintf("banner: %v is not a declared severity", s))
	}
	return s
}

func mustVariant(v models.Variant) models.Variant {
	v = v.Normalize()
	if !v.Valid() {
		panic(fmt.Sprintf("banner: %v is not a declared variant", v))
	}
	return v
}
