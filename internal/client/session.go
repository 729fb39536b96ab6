// Package client is the HTTP client half of Gratitude Grove: a persisted
// session snapshot, the auth gateway, diary calls and a cached feed view.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// SessionFileName is the fixed snapshot file under the user config dir.
const SessionFileName = "gratitude_grove_user.json"

// Profile is the signed-in user as the server reports it.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

type snapshot struct {
	Profile Profile `json:"profile"`
	Token   string  `json:"token"`
}

// Session holds the current sign-in state and mirrors it to one JSON file.
// There is a single logical writer per user; no cross-process locking.
type Session struct {
	path string
	cur  *snapshot
}

// NewSession stores the snapshot at the default per-user config path.
func NewSession() (*Session, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewSessionAt(filepath.Join(dir, "gratitude-grove", SessionFileName)), nil
}

// NewSessionAt stores the snapshot at an explicit path.
func NewSessionAt(path string) *Session {
	return &Session{path: path}
}

// Restore loads the persisted snapshot. A missing or unparsable file means
// unauthenticated; a corrupt file is discarded so the next start is clean.
// Restore never fails startup.
func (s *Session) Restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.cur = nil
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Token == "" {
		s.cur = nil
		_ = os.Remove(s.path)
		return
	}
	s.cur = &snap
}

// Active reports whether a signed-in snapshot is loaded.
func (s *Session) Active() bool { return s.cur != nil }

// Profile returns the signed-in profile, or nil when unauthenticated.
func (s *Session) Profile() *Profile {
	if s.cur == nil {
		return nil
	}
	p := s.cur.Profile
	return &p
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// SetActive replaces the in-memory state and the file together. The file is
// written to a temp path and renamed so a crash never leaves a half-written
// snapshot behind.
func (s *Session) SetActive(p Profile, token string) error {
	snap := snapshot{Profile: p, Token: token}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}

	s.cur = &snap
	return nil
}

// Clear drops the snapshot from memory and disk. Clearing an already clear
// session is a no-op.
func (s *Session) Clear() error {
	s.cur = nil
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
