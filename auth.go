package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	interrors "github.com/denoise-ai/denoise/client/internal/errors"
	"github.com/denoise-ai/denoise/client/internal/identity"
	"github.com/denoise-ai/denoise/client/internal/types"
)

// Auth owns the signed-in identity. It derives user ids from emails,
// reconciles the remote profile record on every sign-in, persists the
// identity so it survives a restart, and fans identity changes out to
// registered watchers.
//
// Watchers are invoked synchronously, in registration order, on the
// goroutine performing the mutation, so they observe identity transitions in
// the order they occur.
type Auth struct {
	client *Client
	store  *identity.Store

	mu       sync.Mutex
	current  *types.Identity
	loading  bool
	watchers []func(*types.Identity)
}

// NewAuth builds an Auth over the given client. storePath names the JSON
// file holding the persisted identity; empty selects the per-user default
// location. The persisted identity is not read until Restore is called;
// until then Loading reports true so dependents can tell "not yet
// determined" from "determined to be absent".
func NewAuth(c *Client, storePath string) (*Auth, error) {
	if storePath == "" {
		p, err := identity.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve identity store path: %w", err)
		}
		storePath = p
	}
	return &Auth{client: c, store: identity.NewStore(storePath), loading: true}, nil
}

// DeriveUserID maps an email address to the stable user id used as the join
// key for every remote call. See the identity package for the (placeholder)
// derivation scheme.
func DeriveUserID(email string) string {
	return identity.DeriveUserID(email)
}

// Watch registers a synchronous observer of identity changes. Register
// watchers before calling Restore so they see the restored identity.
func (a *Auth) Watch(fn func(*types.Identity)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.watchers = append(a.watchers, fn)
}

// Restore loads a previously persisted identity, if any, and notifies
// watchers with the result (possibly nil). Corrupt store content is treated
// as absent. Restore is meant to run once, at process start, before any
// user-facing surface renders.
func (a *Auth) Restore() {
	ident, err := a.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("identity restore failed; starting signed out")
		ident = nil
	}

	a.mu.Lock()
	a.current = ident
	a.loading = false
	a.mu.Unlock()

	a.notify(ident)
}

// Loading reports whether the persisted identity has not yet been read.
func (a *Auth) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Current returns the signed-in identity, or nil when signed out.
func (a *Auth) Current() *types.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	ident := *a.current
	return &ident
}

// SignIn resolves the identity for email, reconciles its remote profile
// record, makes it current, and persists it. Absence of a remote profile is
// a normal path; only derivation or reconciliation failures produce an
// *AuthError, and those leave local state untouched.
func (a *Auth) SignIn(ctx context.Context, email string) (*types.Identity, error) {
	if email == "" {
		return nil, &AuthError{Email: email, Err: fmt.Errorf("email is required")}
	}
	userID := identity.DeriveUserID(email)
	if err := types.ValidateUserID(userID); err != nil {
		return nil, &AuthError{Email: email, Err: err}
	}

	displayName, instructions, err := a.reconcile(ctx, userID, email)
	if err != nil {
		return nil, &AuthError{Email: email, Err: err}
	}

	ident := &types.Identity{
		ID:                 userID,
		Email:              email,
		DisplayName:        displayName,
		SystemInstructions: instructions,
	}
	a.setCurrent(ident)

	log.Info().Str("user_id", userID).Msg("signed in")
	out := *ident
	return &out, nil
}

// SignUp registers a new user. With the placeholder identity scheme there is
// no separate registration step; the reconcile write inside SignIn creates
// the remote profile record if it does not exist.
func (a *Auth) SignUp(ctx context.Context, email string) (*types.Identity, error) {
	return a.SignIn(ctx, email)
}

// SignOut clears the current identity from memory and durable storage.
// Calling it while signed out is a no-op: no store access, no notification.
func (a *Auth) SignOut() {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return
	}
	userID := a.current.ID
	a.current = nil
	a.mu.Unlock()

	if err := a.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("clearing persisted identity failed")
	}
	log.Info().Str("user_id", userID).Msg("signed out")
	a.notify(nil)
}

// ProfileUpdate carries the fields of an explicit profile save. Nil fields
// keep their current values; the write itself always sends the full record.
type ProfileUpdate struct {
	DisplayName        *string
	SystemInstructions *string
}

// UpdateProfile merges upd into the current identity, persists it locally,
// and overwrites the remote record. The local update is optimistic: on a
// failed write the new values stay cached and a *ProfileWriteError is
// returned, leaving the divergence to heal on the next successful save.
func (a *Auth) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	a.mu.Lock()
	if a.current == nil {
		a.mu.Unlock()
		return fmt.Errorf("update profile: not signed in")
	}
	if upd.DisplayName != nil {
		a.current.DisplayName = *upd.DisplayName
	}
	if upd.SystemInstructions != nil {
		a.current.SystemInstructions = *upd.SystemInstructions
	}
	ident := *a.current
	a.mu.Unlock()

	a.persist(&ident)
	a.notify(&ident)

	err := a.client.UpsertProfile(ctx, types.UpsertProfileRequest{
		UserID:             ident.ID,
		Email:              ident.Email,
		DisplayName:        ident.DisplayName,
		SystemInstructions: ident.SystemInstructions,
	})
	if err != nil {
		return &ProfileWriteError{UserID: ident.ID, Err: err}
	}
	return nil
}

// reconcile reads the remote profile record for userID and writes back the
// canonical record, guaranteeing it exists after every authentication.
//
// Read outcomes: a 404 means a new identity (empty defaults); any other read
// failure also proceeds with empty defaults, because a remote outage must
// not block starting a local session. The write is then attempted
// unconditionally; a transport-level write failure is logged and swallowed,
// while a server rejection surfaces to the caller.
func (a *Auth) reconcile(ctx context.Context, userID, email string) (displayName, instructions string, err error) {
	resp, readErr := a.client.GetInstructions(ctx, userID)
	switch {
	case readErr == nil:
		displayName = resp.DisplayName
		instructions = resp.Instructions
	case errors.Is(readErr, ErrNotFound):
		log.Debug().Str("user_id", userID).Msg("no remote profile yet; starting fresh")
	default:
		log.Warn().Err(readErr).Str("user_id", userID).Msg("profile read failed; proceeding with empty profile")
	}

	writeErr := a.client.UpsertProfile(ctx, types.UpsertProfileRequest{
		UserID:             userID,
		Email:              email,
		DisplayName:        displayName,
		SystemInstructions: instructions,
	})
	if writeErr != nil {
		if interrors.IsNetwork(writeErr) {
			log.Warn().Err(writeErr).Str("user_id", userID).Msg("profile write failed; will retry on next sign-in")
			return displayName, instructions, nil
		}
		return "", "", writeErr
	}
	return displayName, instructions, nil
}

// setCurrent installs ident as the signed-in identity, persists it, and
// notifies watchers.
func (a *Auth) setCurrent(ident *types.Identity) {
	a.mu.Lock()
	a.current = ident
	a.mu.Unlock()

	a.persist(ident)
	a.notify(ident)
}

func (a *Auth) persist(ident *types.Identity) {
	if err := a.store.Save(ident); err != nil {
		log.Warn().Err(err).Str("user_id", ident.ID).Msg("persisting identity failed")
	}
}

func (a *Auth) notify(ident *types.Identity) {
	a.mu.Lock()
	watchers := make([]func(*types.Identity), len(a.watchers))
	copy(watchers, a.watchers)
	a.mu.Unlock()

	for _, fn := range watchers {
		fn(ident)
	}
}
