// ABOUTME: Tests for the badger-backed session store.
// ABOUTME: Covers install, logout, expiry, and restart persistence.
package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workoutplan/cli/internal/models"
)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestStoreStartsEmpty(t *testing.T) {
	s := openStore(t, t.TempDir())
	defer s.Close()

	if s.Current() != nil {
		t.Error("expected no session in a fresh store")
	}
	if s.WasExpired() {
		t.Error("fresh store is not expired")
	}
}

func TestInstallAndCurrent(t *testing.T) {
	s := openStore(t, t.TempDir())
	defer s.Close()

	token := signToken(t, jwt.MapClaims{"sub": "coach@gym.io", "name": "Coach", "role": "trainer"})
	sess, err := s.Install(token, "coach@gym.io")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Role != models.RoleTrainer {
		t.Errorf("Role = %s, want trainer", sess.Role)
	}

	cur := s.Current()
	if cur == nil {
		t.Fatal("expected a current session")
	}
	if cur.Token != token || cur.Email != "coach@gym.io" || cur.Name != "Coach" {
		t.Errorf("unexpected session: %+v", cur)
	}
}

func TestInstallRejectsMalformedToken(t *testing.T) {
	s := openStore(t, t.TempDir())
	defer s.Close()

	if _, err := s.Install("not-a-token", "you@example.com"); err == nil {
		t.Error("expected an error")
	}
	if s.Current() != nil {
		t.Error("failed install must not leave a session behind")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := openStore(t, t.TempDir())
	defer s.Close()

	token := signToken(t, jwt.MapClaims{"role": "user"})
	if _, err := s.Install(token, "you@example.com"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("expected no session after Clear")
	}
	if s.WasExpired() {
		t.Error("logout is not expiry")
	}

	// Clearing again must not fail.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestExpireIsDistinguishedFromLogout(t *testing.T) {
	s := openStore(t, t.TempDir())
	defer s.Close()

	token := signToken(t, jwt.MapClaims{"role": "user"})
	if _, err := s.Install(token, "you@example.com"); err != nil {
		t.Fatal(err)
	}

	if err := s.Expire(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Error("expected no session after Expire")
	}
	if !s.WasExpired() {
		t.Error("expected the expired marker")
	}

	// A fresh login resets the marker.
	if _, err := s.Install(token, "you@example.com"); err != nil {
		t.Fatal(err)
	}
	if s.WasExpired() {
		t.Error("login must clear the expired marker")
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	token := signToken(t, jwt.MapClaims{"sub": "you@example.com", "role": "user"})

	s := openStore(t, dir)
	if _, err := s.Install(token, "you@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := openStore(t, dir)
	defer reopened.Close()

	cur := reopened.Current()
	if cur == nil {
		t.Fatal("expected the persisted session to load at open")
	}
	if cur.Token != token || cur.Email != "you@example.com" {
		t.Errorf("unexpected session: %+v", cur)
	}
	if cur.Role != models.RoleUser {
		t.Errorf("Role = %s, want user", cur.Role)
	}
}

func TestClearSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	token := signToken(t, jwt.MapClaims{"role": "user"})

	s := openStore(t, dir)
	if _, err := s.Install(token, "you@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := openStore(t, dir)
	defer reopened.Close()

	if reopened.Current() != nil {
		t.Error("cleared session must not resurrect on reopen")
	}
}
