package audio

import (
	"context"
	"errors"
	"fmt"
)

// PlaybackError is a recoverable audio failure. The drill continues without
// audio for the item; nothing propagates past the resolver boundary.
type PlaybackError struct {
	AudioID string
	Stage   string // "fetch", "cache" or "play"
	Err     error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("audio %s: %s: %v", e.AudioID, e.Stage, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Resolver turns an audio id into sound: play from the store, else fetch,
// persist, then play. All collaborator failures are converted to
// *PlaybackError here; callers only decide whether to show the warning.
type Resolver struct {
	store    Store
	provider Provider
	player   Player
}

// NewResolver wires the three collaborators together.
func NewResolver(store Store, provider Provider, player Player) *Resolver {
	return &Resolver{store: store, provider: provider, player: player}
}

// ResolveAndPlay plays the artifact for id, fetching and caching it first
// when it is not stored yet. Calling it again with the same id replays from
// the cache without touching the provider.
func (r *Resolver) ResolveAndPlay(ctx context.Context, id string) error {
	if r.store.Has(id) {
		data, err := r.store.Get(id)
		if err == nil {
			return r.play(id, data)
		}
		// Unreadable cache entry: fall through and fetch a fresh copy.
	}

	data, err := r.provider.Fetch(ctx, id)
	if err != nil {
		return &PlaybackError{AudioID: id, Stage: "fetch", Err: err}
	}
	if len(data) == 0 {
		return &PlaybackError{AudioID: id, Stage: "fetch", Err: errors.New("empty audio body")}
	}

	// Persist before playing so a playback failure never forces a re-download.
	if err := r.store.Put(id, data); err != nil {
		if perr := r.play(id, data); perr != nil {
			return perr
		}
		return &PlaybackError{AudioID: id, Stage: "cache", Err: err}
	}
	return r.play(id, data)
}

func (r *Resolver) play(id string, data []byte) error {
	if err := r.player.Play(data); err != nil {
		return &PlaybackError{AudioID: id, Stage: "play", Err: err}
	}
	return nil
}

// NopResolver satisfies the resolver interface without touching the store,
// the network or the speaker. Used when audio is disabled.
type NopResolver struct{}

func (NopResolver) ResolveAndPlay(context.Context, string) error { return nil }
