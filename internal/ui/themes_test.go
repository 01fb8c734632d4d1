package ui

import (
	"strings"
	"testing"
)

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"neon", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("InitTheme(true) should disable colors, got %q", GetCurrentTheme().Name)
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR should disable colors, got %q", GetCurrentTheme().Name)
	}
}

func TestColorAccessors(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorReset() != DarkTheme.Reset || ColorBlue() != DarkTheme.Primary {
		t.Error("color accessors should read the dark theme")
	}

	SetCurrentTheme(NoColorTheme)
	for _, c := range []string{ColorRed(), ColorGreen(), ColorYellow(), ColorBlue(), ColorMagenta(), ColorGrey(), ColorBold(), ColorUnderline(), ColorReset()} {
		if c != "" {
			t.Errorf("no-color theme should yield empty codes, got %q", c)
		}
	}
}

func TestHeading(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(NoColorTheme)
	if got := Heading("Summary"); got != "Summary" {
		t.Errorf("Heading without colors = %q, want %q", got, "Summary")
	}

	SetCurrentTheme(DarkTheme)
	if got := Heading("Summary"); !strings.Contains(got, "Summary") {
		t.Errorf("Heading should keep the text, got %q", got)
	}
}
