package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DryRun writes each payload as one JSON line instead of sending it.
type DryRun struct {
	mu   sync.Mutex
	out  io.Writer
	path string
	now  func() time.Time
}

// NewDryRun writes to out.
func NewDryRun(out io.Writer) *DryRun {
	return &DryRun{out: out, now: func() time.Time { return time.Now().UTC() }}
}

// NewDryRunFile appends to the file at path, opening it for each submit. An
// empty path discards payloads.
func NewDryRunFile(path string) *DryRun {
	return &DryRun{path: path, now: func() time.Time { return time.Now().UTC() }}
}

type dryRunRecord struct {
	Time    time.Time         `json:"time"`
	Payload map[string]string `json:"payload"`
}

// Submit records payload and reports success.
func (d *DryRun) Submit(ctx context.Context, payload map[string]string) (Result, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
	}
	if d == nil || (d.out == nil && d.path == "") {
		return Result{OK: true}, nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	line, err := json.Marshal(dryRunRecord{Time: d.now(), Payload: payload})
	if err != nil {
		return Result{}, fmt.Errorf("submission: encode dry run: %w", err)
	}
	line = append(line, '\n')
	out := d.out
	if out == nil {
		if err := os.MkdirAll(filepath.Dir(d.path), 0o755); err != nil {
			return Result{}, fmt.Errorf("submission: ensure dry run dir: %w", err)
		}
		f, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return Result{}, fmt.Errorf("submission: open dry run file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := out.Write(line); err != nil {
		return Result{}, fmt.Errorf("submission: write dry run: %w", err)
	}
	return Result{OK: true}, nil
}
