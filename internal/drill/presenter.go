package drill

import (
	"context"
	"fmt"
	"strings"
)

// AudioResolver resolves an audio id to a playable artifact and plays it to
// completion. Implemented by internal/audio.Resolver.
type AudioResolver interface {
	ResolveAndPlay(ctx context.Context, id string) error
}

// Presenter renders prompt text and decides which audio id to play when an
// item is presented or revealed. It keeps no per-item state, so present and
// reveal are safely repeatable.
type Presenter struct {
	audio AudioResolver
}

// NewPresenter wires a presenter to an audio resolver.
func NewPresenter(audio AudioResolver) *Presenter {
	return &Presenter{audio: audio}
}

// PromptLine renders the prompt for an item, appending the English gloss
// when the display toggle is on.
func (p *Presenter) PromptLine(it *Item, showGloss bool) string {
	if showGloss && it.Gloss != "" {
		return fmt.Sprintf("%s (%s)", it.PromptText, it.Gloss)
	}
	return it.PromptText
}

// Present plays the item's primary pronunciation audio. A resolver failure
// is returned for reporting but is never fatal to the session.
func (p *Presenter) Present(ctx context.Context, it *Item) error {
	if it.AudioID == "" {
		return nil
	}
	return p.audio.ResolveAndPlay(ctx, it.AudioID)
}

// Reveal plays the corrective audio confirming the full correct form,
// falling back to the primary audio when no corrective recording exists.
func (p *Presenter) Reveal(ctx context.Context, it *Item) error {
	id := it.CorrectiveAudioID
	if id == "" {
		id = it.AudioID
	}
	if id == "" {
		return nil
	}
	return p.audio.ResolveAndPlay(ctx, id)
}

// UsageReminder lists the valid answers and session commands for an item
// with a closed answer vocabulary.
func UsageReminder(it *Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Expected one of: %s\n", strings.Join(it.ClosedSet, ", "))
	b.WriteString("  quit or exit: end the session\n")
	b.WriteString("  en, eng or english: show the translation\n")
	b.WriteString("  (blank) or repeat: replay the audio")
	return b.String()
}
