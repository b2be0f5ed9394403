package notify

import (
	"testing"

	"github.com/allenbenz/cargo-testify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	title   string
	message string
}

func newRecordingClient() (*Client, *[]recorded, *[]recorded) {
	var notifies, alerts []recorded
	c := &Client{
		notify: func(title, message string, _ any) error {
			notifies = append(notifies, recorded{title, message})
			return nil
		},
		alert: func(title, message string, _ any) error {
			alerts = append(alerts, recorded{title, message})
			return nil
		},
	}
	return c, &notifies, &alerts
}

func TestNewClient_WiresDispatchers(t *testing.T) {
	client := NewClient()

	require.NotNil(t, client.notify)
	require.NotNil(t, client.alert)
}

func TestNotify_Passed(t *testing.T) {
	client, notifies, alerts := newRecordingClient()

	err := client.Notify(domain.Outcome{
		Kind:   domain.TestsPassed,
		Detail: "3 passed; 0 failed; 0 ignored; 0 measured; 0 filtered out",
	})

	require.NoError(t, err)
	require.Len(t, *notifies, 1)
	assert.Empty(t, *alerts)
	assert.Equal(t, "Tests passed", (*notifies)[0].title)
	assert.Equal(t, "3 passed; 0 failed; 0 ignored; 0 measured; 0 filtered out", (*notifies)[0].message)
}

func TestNotify_FailedAndCompileErrorAlert(t *testing.T) {
	client, notifies, alerts := newRecordingClient()

	require.NoError(t, client.Notify(domain.Outcome{Kind: domain.TestsFailed, Detail: "1 failed"}))
	require.NoError(t, client.Notify(domain.Outcome{Kind: domain.CompileError, Detail: "error[E0308]: mismatched types"}))

	assert.Empty(t, *notifies)
	require.Len(t, *alerts, 2)
	assert.Equal(t, "Tests failed", (*alerts)[0].title)
	assert.Equal(t, "Compile error", (*alerts)[1].title)
}

func TestNotify_UnknownKind(t *testing.T) {
	client, _, _ := newRecordingClient()

	err := client.Notify(domain.Outcome{Kind: domain.OutcomeKind(42)})

	assert.Error(t, err)
}
