package models

import (
	"errors"
	"testing"
)

func TestSeverity_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     Severity
	}{
		{"unset becomes info", SeverityUnset, SeverityInfo},
		{"error stays", SeverityError, SeverityError},
		{"nothing stays", SeverityNothing, SeverityNothing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.severity.Normalize(); got != tt.want {
				t.Errorf("Severity.Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_Normalize(t *testing.T) {
	if got := VariantUnset.Normalize(); got != VariantStandard {
		t.Errorf("VariantUnset.Normalize() = %v, want standard", got)
	}
	if got := VariantFilled.Normalize(); got != VariantFilled {
		t.Errorf("VariantFilled.Normalize() = %v, want filled", got)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"error", SeverityError, false},
		{"warning", SeverityWarning, false},
		{"info", SeverityInfo, false},
		{"success", SeveritySuccess, false},
		{"nothing", SeverityNothing, false},
		{" Warning ", SeverityWarning, false},
		{"", SeverityInfo, false},
		{"critical", SeverityUnset, true},
		{"Extreme", SeverityUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSeverity) {
					t.Fatalf("ParseSeverity(%q) error = %v, want ErrInvalidSeverity", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverity(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input   string
		want    Variant
		wantErr bool
	}{
		{"filled", VariantFilled, false},
		{"outlined", VariantOutlined, false},
		{"standard", VariantStandard, false},
		{"", VariantStandard, false},
		{"OUTLINED", VariantOutlined, false},
		{"ghost", VariantUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVariant(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVariant) {
					t.Fatalf("ParseVariant(%q) error = %v, want ErrInvalidVariant", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariant(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeverity_StringRoundTrip(t *testing.T) {
	for _, s := range Severities() {
		got, err := ParseSeverity(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s.String(), got, err)
		}
	}
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
}

func TestSeverity_OutOfRange(t *testing.T) {
	s := Severity(42)
	if s.Valid() {
		t.Error("Severity(42).Valid() = true, want false")
	}
	if got := s.String(); got != "severity(42)" {
		t.Errorf("Severity(42).String() = %q", got)
	}
	if Variant(9).Valid() {
		t.Error("Variant(9).Valid() = true, want false")
	}
}

func TestSeverity_Title(t *testing.T) {
	if got := SeverityNothing.Title(); got != "Nothing" {
		t.Errorf("SeverityNothing.Title() = %q, want %q", got, "Nothing")
	}
	if got := SeverityUnset.Title(); got != "Info" {
		t.Errorf("SeverityUnset.Title() = %q, want %q", got, "Info")
	}
}

func TestDefaultProps(t *testing.T) {
	p := DefaultProps()

	if p.Severity != SeverityInfo {
		t.Errorf("DefaultProps().Severity = %v, want info", p.Severity)
	}
	if p.Variant != VariantStandard {
		t.Errorf("DefaultProps().Variant = %v, want standard", p.Variant)
	}
	if !p.ShowTitle || !p.ShowDescription {
		t.Error("DefaultProps() should show title and description")
	}
	if p.OnClose != nil || p.Action != nil {
		t.Error("DefaultProps() should carry no callbacks")
	}
	if !p.Style.IsZero() {
		t.Error("DefaultProps() should carry no style patch")
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   Spacing
	}{
		{"none", nil, Spacing{}},
		{"all sides", []int{5}, Spacing{5, 5, 5, 5}},
		{"vertical horizontal", []int{6, 16}, Spacing{6, 16, 6, 16}},
		{"three values", []int{4, 0, 2}, Spacing{4, 0, 2, 0}},
		{"four values", []int{7, 12, 7, 0}, Spacing{7, 12, 7, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.values...); got != tt.want {
				t.Errorf("Pad(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}
