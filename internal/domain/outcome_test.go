package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Title(t *testing.T) {
	tests := []struct {
		name string
		want string
		kind OutcomeKind
	}{
		{name: "passed", kind: TestsPassed, want: "Tests passed"},
		{name: "failed", kind: TestsFailed, want: "Tests failed"},
		{name: "compile error", kind: CompileError, want: "Compile error"},
		{name: "unknown", kind: OutcomeKind(99), want: "Unknown outcome"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome{Kind: tt.kind}.Title())
		})
	}
}

func TestOutcome_String(t *testing.T) {
	o := Outcome{Kind: TestsFailed, Detail: "1 passed; 1 failed; 0 ignored; 0 measured; 0 filtered out"}
	assert.Equal(t, "Tests failed: 1 passed; 1 failed; 0 ignored; 0 measured; 0 filtered out", o.String())
}
