package domain

// OutcomeKind identifies how a test run ended. The set is closed: the
// notifier matches it exhaustively and treats anything else as a bug.
type OutcomeKind int

// Valid outcome kinds.
const (
	// TestsPassed: the suite ran and every test passed.
	TestsPassed OutcomeKind = iota
	// TestsFailed: the suite compiled and ran, but assertions failed.
	TestsFailed
	// CompileError: the run never reached the test phase.
	CompileError
)

// Outcome is the classified result of one run. Detail is always a line
// that actually matched a recognized output pattern, never fabricated.
type Outcome struct {
	Detail string
	Kind   OutcomeKind
}

// Title returns the human-readable notification title for the outcome.
func (o Outcome) Title() string {
	switch o.Kind {
	case TestsPassed:
		return "Tests passed"
	case TestsFailed:
		return "Tests failed"
	case CompileError:
		return "Compile error"
	default:
		return "Unknown outcome"
	}
}

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	return o.Title() + ": " + o.Detail
}
