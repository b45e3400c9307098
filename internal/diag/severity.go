package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for diagnostics that do not make the document invalid.
	SevWarning Severity = iota + 1
	// SevError is for malformed tokens and grammar violations.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lowercase form used in short output.
func (s Severity) Label() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
