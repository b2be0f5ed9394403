package domain

// TestCommand describes one subprocess invocation of the test suite.
type TestCommand struct {
	Program string   // Program to execute (e.g. "cargo")
	Dir     string   // Working directory (the project root)
	Args    []string // Arguments, starting with "test"
}

// RunResult is the raw result of one completed test run: the child's exit
// status plus everything it wrote to each stream. It is consumed exactly
// once by the classifier and not retained.
type RunResult struct {
	Success bool   // Whether the process exited with status zero
	Stdout  string // Full captured stdout, line-delimited
	Stderr  string // Full captured stderr, line-delimited
}

// ChangeEvent is a single filesystem notification. Path may be empty:
// some watch backends emit path-less events, which are non-actionable.
type ChangeEvent struct {
	Path string
}
