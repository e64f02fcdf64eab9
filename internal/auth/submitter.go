// Package auth holds the submission collaborators for the form.
//
// There is no real authentication here: the collaborators log, record or
// fan out the credentials they are given and report nothing back.
package auth

import (
	"sync"

	"github.com/muurk/authscreen/internal/form"
	"github.com/muurk/authscreen/internal/logging"
)

// LogSubmitter logs each submission through the logging package. It is the
// stand-in for the authentication call.
type LogSubmitter struct {
	// Mode is reported alongside the email; it is read at submit time.
	Mode func() form.Mode
}

// Submit implements form.Submitter
func (s LogSubmitter) Submit(creds form.Credentials) {
	mode := form.ModeLogin
	if s.Mode != nil {
		mode = s.Mode()
	}
	logging.LogSubmission(mode.String(), creds.Email)
}

// Recorder keeps every submission in memory.
type Recorder struct {
	mu    sync.Mutex
	calls []form.Credentials
}

// Submit implements form.Submitter
func (r *Recorder) Submit(creds form.Credentials) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, creds)
}

// Calls returns a copy of the recorded submissions in order.
func (r *Recorder) Calls() []form.Credentials {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]form.Credentials, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent submission.
func (r *Recorder) Last() (form.Credentials, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return form.Credentials{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Multi fans a submission out to several submitters in order.
// Nil entries are skipped.
func Multi(submitters ...form.Submitter) form.Submitter {
	return form.SubmitterFunc(func(creds form.Credentials) {
		for _, s := range submitters {
			if s != nil {
				s.Submit(creds)
			}
		}
	})
}
