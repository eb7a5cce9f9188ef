package dataset

import (
	"sync"

	"exec-dashboard-go/internal/types"
)

// Store caches parsed activity workbooks for the lifetime of the process.
// Source files are static per deployment, so there is no invalidation;
// records are immutable once loaded and safe to share across requests.
// A load failure is sticky and surfaces on every subsequent call.
type Store struct {
	callsPath  string
	emailsPath string

	callsOnce sync.Once
	calls     []types.CallRecord
	callsErr  error

	emailsOnce sync.Once
	emails     []types.EmailRecord
	emailsErr  error
}

func NewStore(callsPath, emailsPath string) *Store {
	return &Store{callsPath: callsPath, emailsPath: emailsPath}
}

// Calls returns the cached call records, loading them on first use.
func (s *Store) Calls() ([]types.CallRecord, error) {
	s.callsOnce.Do(func() {
		s.calls, s.callsErr = LoadCalls(s.callsPath)
	})
	return s.calls, s.callsErr
}

// Emails returns the cached email records, loading them on first use.
func (s *Store) Emails() ([]types.EmailRecord, error) {
	s.emailsOnce.Do(func() {
		s.emails, s.emailsErr = LoadEmails(s.emailsPath)
	})
	return s.emails, s.emailsErr
}
