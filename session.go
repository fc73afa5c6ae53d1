package client

import (
	"github.com/rs/zerolog/log"

	"github.com/denoise-ai/denoise/client/internal/types"
)

// purger issues the detached remote purge of server-held conversation
// memory for a user id. *Client implements it; tests substitute a recorder.
type purger interface {
	purgeSession(userID string)
}

// SessionSync keeps the transient UI state and the server-held conversation
// memory in lockstep across identity transitions. The local state is never
// persisted, so whenever the client presents a fresh identity context the
// server-side memory is forced empty too; the two are always cleared
// together at a boundary, never resurrected from each other.
//
// SessionSync is an edge detector over the stream of observed identities,
// not a per-render effect: it compares each observation against the previous
// id and acts only when the id actually changes.
//
//	none -> id    purge id, reset state   (login, or restore after refresh)
//	id   -> none  purge id, reset state   (logout; the departing id)
//	id1  -> id2   purge id2, reset state  (switch; the arriving id may have
//	                                       stale memory from an old session)
//	id   -> id    nothing
//
// Observe must be called from a single goroutine in transition order; wiring
// it as an Auth watcher satisfies that.
type SessionSync struct {
	p     purger
	state *State

	prevID string // last observed id, "" when signed out
}

// NewSessionSync builds the controller over a client and the state it
// resets. Register its Observe with Auth.Watch before calling Auth.Restore.
func NewSessionSync(c *Client, state *State) *SessionSync {
	return &SessionSync{p: c, state: state}
}

// Observe processes the next observed identity value (nil when signed out).
// The state reset is synchronous; the remote purge is detached, with the id
// captured at this transition, and its failure never blocks or reverts the
// reset.
func (s *SessionSync) Observe(ident *types.Identity) {
	cur := ""
	if ident != nil {
		cur = ident.ID
	}
	prev := s.prevID
	s.prevID = cur

	switch {
	case cur == "" && prev != "":
		// Logout: purge the departing identity's server memory.
		log.Debug().Str("user_id", prev).Msg("session sync: sign-out, purging departed session")
		s.p.purgeSession(prev)
		s.state.Reset()

	case cur != "" && cur != prev:
		// Fresh arrival: the local transcript starts empty, so enforce an
		// empty server-side session for the arriving identity as well.
		log.Debug().Str("user_id", cur).Msg("session sync: new session, purging server memory")
		s.p.purgeSession(cur)
		s.state.Reset()
	}
}
