package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunWritesOneLinePerSubmit(t *testing.T) {
	var buf bytes.Buffer
	dry := NewDryRun(&buf)
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	dry.now = func() time.Time { return fixed }

	result, err := dry.Submit(context.Background(), map[string]string{"fullName": "Ada"})
	require.NoError(t, err)
	assert.True(t, result.OK)

	var record dryRunRecord
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "Ada", record.Payload["fullName"])
	assert.True(t, record.Time.Equal(fixed))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestDryRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDryRun(&bytes.Buffer{}).Submit(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitterFunc(t *testing.T) {
	var got map[string]string
	var s Submitter = SubmitterFunc(func(_ context.Context, payload map[string]string) (Result, error) {
		got = payload
		return Result{OK: true}, nil
	})
	_, err := s.Submit(context.Background(), map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got["email"])
}

func TestDryRunFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dry-run.jsonl")
	dry := NewDryRunFile(path)
	for i := 0; i < 2; i++ {
		_, err := dry.Submit(context.Background(), map[string]string{"n": "x"})
		require.NoError(t, err)
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
}

func TestNewPicksAdapter(t *testing.T) {
	_, isDry := New(Settings{DryRun: true}, nil).(*DryRun)
	assert.True(t, isDry)
	fs, isFormspree := New(Settings{FormID: "abc", Endpoint: "http://localhost:1/f", Timeout: time.Second}, nil).(*Formspree)
	require.True(t, isFormspree)
	assert.Equal(t, "http://localhost:1/f/abc", fs.URL())
}
