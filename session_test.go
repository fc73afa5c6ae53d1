package client

import (
	"testing"

	"github.com/denoise-ai/denoise/client/internal/types"
)

// recordingPurger captures every detached purge SessionSync requests.
type recordingPurger struct {
	purged []string
}

func (r *recordingPurger) purgeSession(userID string) {
	r.purged = append(r.purged, userID)
}

func newTestSync() (*SessionSync, *recordingPurger, *State) {
	p := &recordingPurger{}
	state := NewState()
	return &SessionSync{p: p, state: state}, p, state
}

func ident(id string) *types.Identity {
	return &types.Identity{ID: id, Email: id + "@example.com"}
}

func seedState(s *State) {
	s.AppendMessage(types.Message{Role: types.RoleUser, Content: "hi"})
	s.SetReport(&types.Report{Content: "old report"})
	s.SetPodcast(types.Podcast{AudioURL: "/static/old.mp3"})
}

func assertStateEmpty(t *testing.T, s *State) {
	t.Helper()
	if got := s.ChatHistory(); len(got) != 0 {
		t.Errorf("chat history not reset: %+v", got)
	}
	if got := s.Report(); got != nil {
		t.Errorf("report not reset: %+v", got)
	}
	if got := s.Podcast(); got != (types.Podcast{}) {
		t.Errorf("podcast not reset: %+v", got)
	}
}

func TestSessionSync_LoginPurgesArrivingIdentity(t *testing.T) {
	t.Parallel()
	sync, p, state := newTestSync()
	seedState(state)

	sync.Observe(ident("u1"))

	if len(p.purged) != 1 || p.purged[0] != "u1" {
		t.Fatalf("purged = %v, want [u1]", p.purged)
	}
	assertStateEmpty(t, state)
}

func TestSessionSync_LogoutPurgesDepartingIdentity(t *testing.T) {
	t.Parallel()
	sync, p, state := newTestSync()

	sync.Observe(ident("u1"))
	seedState(state)
	sync.Observe(nil)

	if len(p.purged) != 2 || p.purged[1] != "u1" {
		t.Fatalf("purged = %v, want the departing id u1 on logout", p.purged)
	}
	assertStateEmpty(t, state)
}

func TestSessionSync_SwitchPurgesArrivingIdentity(t *testing.T) {
	t.Parallel()
	sync, p, state := newTestSync()

	sync.Observe(ident("u1"))
	seedState(state)
	sync.Observe(ident("u2"))

	if len(p.purged) != 2 || p.purged[1] != "u2" {
		t.Fatalf("purged = %v, want the arriving id u2 on switch", p.purged)
	}
	assertStateEmpty(t, state)
}

// Re-observing the same identity must not purge again: the controller reacts
// to edges, not observations.
func TestSessionSync_SteadyStateIsIdle(t *testing.T) {
	t.Parallel()
	sync, p, state := newTestSync()

	sync.Observe(ident("u1"))
	if len(p.purged) != 1 {
		t.Fatalf("setup: purged = %v", p.purged)
	}
	seedState(state)

	for i := 0; i < 3; i++ {
		sync.Observe(ident("u1"))
	}

	if len(p.purged) != 1 {
		t.Fatalf("steady-state observations purged again: %v", p.purged)
	}
	if got := state.ChatHistory(); len(got) != 1 {
		t.Fatalf("steady-state observation reset the transcript: %+v", got)
	}
}

// A restore that finds no persisted identity is not a transition.
func TestSessionSync_SignedOutRestoreIsIdle(t *testing.T) {
	t.Parallel()
	sync, p, _ := newTestSync()

	sync.Observe(nil)
	sync.Observe(nil)

	if len(p.purged) != 0 {
		t.Fatalf("signed-out observations must not purge, got %v", p.purged)
	}
}

func TestSessionSync_FullLifecycle(t *testing.T) {
	t.Parallel()
	sync, p, _ := newTestSync()

	// restore (absent), login, steady, logout, login again
	sync.Observe(nil)
	sync.Observe(ident("u1"))
	sync.Observe(ident("u1"))
	sync.Observe(nil)
	sync.Observe(ident("u1"))

	want := []string{"u1", "u1", "u1"}
	if len(p.purged) != len(want) {
		t.Fatalf("purged = %v, want %v", p.purged, want)
	}
	for i := range want {
		if p.purged[i] != want[i] {
			t.Fatalf("purged = %v, want %v", p.purged, want)
		}
	}
}
