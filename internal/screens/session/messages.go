package session

import (
	"wortlaut/internal/drill"
)

// deckReadyMsg is sent when the deck adapter has loaded the mode's items.
type deckReadyMsg struct {
	Items []*drill.Item
	Err   error
}

// audioPlayedMsg reports the outcome of one playback. Playback failures are
// recoverable: the session shows a warning and keeps going.
type audioPlayedMsg struct {
	Err error
}
