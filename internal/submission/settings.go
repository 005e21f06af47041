package submission

import (
	"strings"
	"time"
)

// Settings selects and configures a Submitter.
type Settings struct {
	FormID     string
	Endpoint   string
	Timeout    time.Duration
	DryRun     bool
	DryRunPath string
}

// New returns the dry-run adapter when s.DryRun is set and the Formspree
// adapter otherwise.
func New(s Settings, logger Logger) Submitter {
	if s.DryRun {
		return NewDryRunFile(strings.TrimSpace(s.DryRunPath))
	}
	return NewFormspree(s.FormID,
		WithEndpoint(s.Endpoint),
		WithTimeout(s.Timeout),
		WithLogger(logger),
	)
}
