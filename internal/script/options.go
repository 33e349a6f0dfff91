package script

// Linter names a lint tool run by the generated hook.
// The empty value means no linter was requested.
type Linter string

const (
	LinterNone       Linter = ""
	LinterRuff       Linter = "ruff"
	LinterBlack      Linter = "black"
	LinterPylint     Linter = "pylint"
	LinterFlake8     Linter = "flake8"
	LinterESLint     Linter = "eslint"
	LinterShellcheck Linter = "shellcheck"
)

// Linters returns the recognized linters in table order.
func Linters() []Linter {
	return []Linter{LinterRuff, LinterBlack, LinterPylint, LinterFlake8, LinterESLint, LinterShellcheck}
}

// Command returns the shell command for the linter.
// ok is false for the empty value and for unrecognized names; such values
// are ignored rather than rejected.
func (l Linter) Command() (cmd string, ok bool) {
	switch l {
	case LinterRuff:
		return "ruff check .", true
	case LinterBlack:
		return "black --check .", true
	case LinterPylint:
		return "pylint src/", true
	case LinterFlake8:
		return "flake8 .", true
	case LinterESLint:
		return "npx eslint .", true
	case LinterShellcheck:
		return "shellcheck **/*.sh", true
	default:
		return "", false
	}
}

// Known reports whether the linter is in the lookup table.
func (l Linter) Known() bool {
	_, ok := l.Command()
	return ok
}

// Formatter names a formatting tool run by the generated hook.
type Formatter string

const (
	FormatterNone     Formatter = ""
	FormatterBlack    Formatter = "black"
	FormatterPrettier Formatter = "prettier"
)

// Formatters returns the recognized formatters in table order.
func Formatters() []Formatter {
	return []Formatter{FormatterBlack, FormatterPrettier}
}

// Command returns the shell command for the formatter, with the same
// no-op policy as Linter.Command.
func (f Formatter) Command() (cmd string, ok bool) {
	switch f {
	case FormatterBlack:
		return "black .", true
	case FormatterPrettier:
		return "npx prettier --write .", true
	default:
		return "", false
	}
}

// Known reports whether the formatter is in the lookup table.
func (f Formatter) Known() bool {
	_, ok := f.Command()
	return ok
}

// Options selects what an option-driven hook runs.
// A non-empty CustomScript takes precedence over every other field.
type Options struct {
	Linter       Linter
	Formatter    Formatter
	RunTests     bool
	CustomScript string
}

// IsZero reports whether no option is set.
func (o Options) IsZero() bool {
	return o == Options{}
}
