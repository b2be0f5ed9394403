// Package report classifies a finished test run from its captured output.
//
// cargo exposes no machine-readable result channel, so classification
// pattern-matches the human-oriented terminal output. Both recognition
// patterns live in this package and nowhere else: if a cargo release
// changes its output format, this file is the single place to update.
// The patterns track the libtest summary line and rustc diagnostic
// format as of cargo 1.x.
package report

import (
	"fmt"
	"regexp"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// Compiled once at package init.
var (
	// resultPattern matches the libtest summary, e.g.
	// "test result: ok. 47 passed; 0 failed; 3 ignored; 0 measured; 0 filtered out; finished in 0.12s".
	// The match starts at the first count so the excerpt reads naturally.
	resultPattern = regexp.MustCompile(`\d+ passed.*filtered out`)

	// errorPattern matches a rustc diagnostic line such as
	// "error[E0308]: mismatched types" or "error: could not compile `foo`".
	errorPattern = regexp.MustCompile(`(?m)^error(\[|:).*`)
)

// Classify translates the raw run result into a typed outcome.
//
// A successful exit must carry a summary line; a failed exit carries
// either a summary line (failing assertions) or a compiler diagnostic.
// Anything else means the output format assumption broke, which is
// unrecoverable: the caller should fail fast rather than guess.
// Only the first match in document order is reported.
func Classify(result *domain.RunResult) (domain.Outcome, error) {
	summary := resultPattern.FindString(result.Stdout)

	if result.Success {
		if summary == "" {
			return domain.Outcome{}, fmt.Errorf("%w: process succeeded but stdout has no test summary", domain.ErrUnrecognizedOutput)
		}
		return domain.Outcome{Kind: domain.TestsPassed, Detail: summary}, nil
	}

	if summary != "" {
		return domain.Outcome{Kind: domain.TestsFailed, Detail: summary}, nil
	}

	if diag := errorPattern.FindString(result.Stderr); diag != "" {
		return domain.Outcome{Kind: domain.CompileError, Detail: diag}, nil
	}

	return domain.Outcome{}, fmt.Errorf("%w: process failed but neither a test summary nor a compiler error was found", domain.ErrUnrecognizedOutput)
}
