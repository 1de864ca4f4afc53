package ui

// Color accessors read the active theme on every call so that a theme change
// applies to subsequent output.

// ColorReset returns the sequence that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold sequence.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorPrimary returns the primary accent color.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorDim returns the secondary color.
func ColorDim() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the info color.
func ColorCyan() string { return GetCurrentTheme().Info }

// Paint wraps s in color and a reset. With colors disabled it returns s.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
