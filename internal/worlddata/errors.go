package worlddata

import "fmt"

// Exit codes for the core's fatal error kinds (spec §7). Each kind gets a
// distinct nonzero code so the CLI can report it to the caller.
const (
	ExitCodeParseError           = 2
	ExitCodeMissingSector        = 3
	ExitCodeInconsistentNeighbor = 4
	ExitCodeConfigError          = 5
)

// ParseError reports a malformed world row or metadata document: an unknown
// UWP character, an out-of-range hex, or a malformed mini-grammar column. It
// is always fatal and aborts the run before any parallel phase begins.
type ParseError struct {
	Sector string
	Hex    string
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in sector %q at hex %s: %s (offending text: %q)", e.Sector, e.Hex, e.Reason, e.Token)
}

// ExitCode identifies this error kind for process-exit reporting.
func (e *ParseError) ExitCode() int { return ExitCodeParseError }

// InconsistentNeighborError reports two worlds claiming the same absolute
// coordinate. It is fatal and aborts before any route is computed.
type InconsistentNeighborError struct {
	Sector string
	Abs    string
	First  string
	Second string
}

func (e *InconsistentNeighborError) Error() string {
	return fmt.Sprintf("sector %q: hex %s claimed by both %q and %q", e.Sector, e.Abs, e.First, e.Second)
}

// ExitCode identifies this error kind for process-exit reporting.
func (e *InconsistentNeighborError) ExitCode() int { return ExitCodeInconsistentNeighbor }
