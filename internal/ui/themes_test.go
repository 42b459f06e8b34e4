package ui

import "testing"

func restoreTheme(t *testing.T) {
	t.Helper()
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })
}

func TestSetThemeByName(t *testing.T) {
	restoreTheme(t)
	testCases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tc := range testCases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q) activated %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNoColorThemeHasEmptyCodes(t *testing.T) {
	restoreTheme(t)
	SetTheme("none")
	for name, code := range map[string]string{
		"Reset":     ColorReset(),
		"Red":       ColorRed(),
		"Green":     ColorGreen(),
		"Yellow":    ColorYellow(),
		"Blue":      ColorBlue(),
		"Cyan":      ColorCyan(),
		"Bold":      ColorBold(),
		"Underline": ColorUnderline(),
	} {
		if code != "" {
			t.Errorf("%s should be empty in the no-color theme, got %q", name, code)
		}
	}
}

func TestInitThemeRespectsFlag(t *testing.T) {
	restoreTheme(t)
	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("InitTheme(true) activated %q, want none", GetCurrentTheme().Name)
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	restoreTheme(t)
	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR env should disable colors, got theme %q", GetCurrentTheme().Name)
	}
}

func TestInitThemeTreatsEmptyNoColorAsSet(t *testing.T) {
	restoreTheme(t)
	// A set-but-empty NO_COLOR still disables colors; LookupEnv
	// distinguishes set from unset.
	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("set-but-empty NO_COLOR should disable colors, got %q", GetCurrentTheme().Name)
	}
}
