package drill

import (
	"time"

	"github.com/google/uuid"
)

// Outcome accumulates what happened during one session: how many prompts
// were presented and which items were ever answered incorrectly. It lives
// exactly as long as the session and is consumed once for the summary.
type Outcome struct {
	SessionID string
	StartedAt time.Time

	presented int
	missed    map[*Item]int
	missOrder []*Item
}

// NewOutcome creates an empty outcome for a fresh session.
func NewOutcome() *Outcome {
	return &Outcome{
		SessionID: uuid.New().String(),
		StartedAt: time.Now(),
		missed:    make(map[*Item]int),
	}
}

// RecordPresentation counts one prompt shown to the learner.
func (o *Outcome) RecordPresentation() {
	o.presented++
}

// RecordMiss marks an item as answered incorrectly at least once.
func (o *Outcome) RecordMiss(it *Item) {
	if _, seen := o.missed[it]; !seen {
		o.missOrder = append(o.missOrder, it)
	}
	o.missed[it]++
}

// Presented returns the number of prompts shown so far.
func (o *Outcome) Presented() int {
	return o.presented
}

// Summary holds the data for the closing report.
type Summary struct {
	SessionID string
	Duration  time.Duration
	DeckSize  int
	Presented int
	Missed    []*Item
}

// Summarize builds the closing summary for a deck of the given size.
func (o *Outcome) Summarize(deckSize int) *Summary {
	missed := make([]*Item, len(o.missOrder))
	copy(missed, o.missOrder)
	return &Summary{
		SessionID: o.SessionID,
		Duration:  time.Since(o.StartedAt),
		DeckSize:  deckSize,
		Presented: o.presented,
		Missed:    missed,
	}
}
