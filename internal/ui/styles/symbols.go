package styles

// Status symbols used in doctor output and install messages.
const (
	SymbolOK   = "✓"
	SymbolFail = "✗"
	SymbolWarn = "!"
)

// OK renders a success line prefix.
func OK(msg string) string {
	return SuccessStyle.Render(SymbolOK) + " " + msg
}

// Fail renders a failure line prefix.
func Fail(msg string) string {
	return ErrorStyle.Render(SymbolFail) + " " + msg
}

// Warn renders a warning line prefix.
func Warn(msg string) string {
	return WarningStyle.Render(SymbolWarn) + " " + msg
}
