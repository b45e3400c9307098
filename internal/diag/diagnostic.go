package diag

import (
	"fmt"

	"dbml/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Location source.Location
}

func New(sev Severity, code Code, loc source.Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Location: loc,
	}
}

func NewError(code Code, loc source.Location, msg string) Diagnostic {
	return New(SevError, code, loc, msg)
}

func NewWarning(code Code, loc source.Location, msg string) Diagnostic {
	return New(SevWarning, code, loc, msg)
}

// IsError reports whether the diagnostic has error severity.
func (d Diagnostic) IsError() bool { return d.Severity == SevError }

// IsWarning reports whether the diagnostic has warning severity.
func (d Diagnostic) IsWarning() bool { return d.Severity == SevWarning }

// String renders the diagnostic as "(line,col): message" with 0-based positions.
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%d,%d): %s", d.Location.StartLine(), d.Location.StartCharacter(), d.Message)
}
