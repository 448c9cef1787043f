package models

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidSeverity is returned when a string does not name a severity
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrInvalidVariant is returned when a string does not name a variant
	ErrInvalidVariant = errors.New("invalid variant")
)

// Severity represents the semantic classification of a banner message.
// The zero value means "not set" and behaves as SeverityInfo.
type Severity uint8

const (
	SeverityUnset Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeveritySuccess
	SeverityNothing // neutral banner, no semantic meaning
)

// Variant represents the visual emphasis of a banner.
// The zero value means "not set" and behaves as VariantStandard.
type Variant uint8

const (
	VariantUnset Variant = iota
	VariantFilled
	VariantOutlined
	VariantStandard
)

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeveritySuccess: "success",
	SeverityNothing: "nothing",
}

var variantNames = [...]string{
	VariantFilled:   "filled",
	VariantOutlined: "outlined",
	VariantStandard: "standard",
}

// Severities returns every severity in declaration order
func Severities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo, SeveritySuccess, SeverityNothing}
}

// Variants returns every variant in declaration order
func Variants() []Variant {
	return []Variant{VariantFilled, VariantOutlined, VariantStandard}
}

// Normalize maps the unset value to the default severity
func (s Severity) Normalize() Severity {
	if s == SeverityUnset {
		return SeverityInfo
	}
	return s
}

// Valid reports whether s is unset or one of the declared severities
func (s Severity) Valid() bool {
	return s <= SeverityNothing
}

func (s Severity) String() string {
	s = s.Normalize()
	if !s.Valid() {
		return "severity(" + strconv.Itoa(int(s)) + ")"
	}
	return severityNames[s]
}

// Title returns the capitalized name, e.g. "Warning"
func (s Severity) Title() string {
	return capitalize(s.String())
}

// Normalize maps the unset value to the default variant
func (v Variant) Normalize() Variant {
	if v == VariantUnset {
		return VariantStandard
	}
	return v
}

// Valid reports whether v is unset or one of the declared variants
func (v Variant) Valid() bool {
	return v <= VariantStandard
}

func (v Variant) String() string {
	v = v.Normalize()
	if !v.Valid() {
		return "variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}

// Title returns the capitalized name, e.g. "Outlined"
func (v Variant) Title() string {
	return capitalize(v.String())
}

// ParseSeverity converts a name such as "warning" into a Severity.
// An empty string yields the default severity.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SeverityInfo, nil
	}
	for _, s := range Severities() {
		if severityNames[s] == name {
			return s, nil
		}
	}
	return SeverityUnset, errors.Wrapf(ErrInvalidSeverity, "parse %q", name)
}

// ParseVariant converts a name such as "outlined" into a Variant.
// An empty string yields the default variant.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantStandard, nil
	}
	for _, v := range Variants() {
		if variantNames[v] == name {
			return v, nil
		}
	}
	return VariantUnset, errors.Wrapf(ErrInvalidVariant, "parse %q", name)
}

// Icon identifies a glyph supplied by the icon-rendering collaborator
type Icon string

const (
	IconErrorOutline   Icon = "error-outline"
	IconWarningAmber   Icon = "warning-amber"
	IconInfoOutlined   Icon = "info-outlined"
	IconCheckCircle    Icon = "check-circle-outlined"
	IconCircleOutlined Icon = "circle-outlined"
	IconClose          Icon = "close"
)

var glyphs = map[Icon]string{
	IconErrorOutline:   "⊘",
	IconWarningAmber:   "⚠",
	IconInfoOutlined:   "ℹ",
	IconCheckCircle:    "✔",
	IconCircleOutlined: "○",
	IconClose:          "✕",
}

// Glyph returns the single-rune stand-in drawn for the icon in text and
// HTML output, or "?" for an unknown icon
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "?"
}

// Action is the optional call-to-action shown next to the close control
type Action struct {
	Label   string
	OnClick func()
}

// Props is the complete input to a single banner render.
// Use DefaultProps as the starting point: the zero value hides both text blocks.
type Props struct {
	Severity        Severity
	Variant         Variant
	Title           string
	Description     string
	ShowTitle       bool
	ShowDescription bool
	OnClose         func()  // nil means no close control
	Action          *Action // nil means no action control
	Style           StylePatch
}

// DefaultProps returns props with every documented default applied
func DefaultProps() Props {
	return Props{
		Severity:        SeverityInfo,
		Variant:         VariantStandard,
		ShowTitle:       true,
		ShowDescription: true,
	}
}

func capitalize(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
