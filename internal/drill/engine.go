package drill

// State is the engine's position in its turn loop.
type State int

const (
	// StateLoading means no item has been drawn yet.
	StateLoading State = iota

	// StateAwaitingAnswer means an item is presented and input is expected.
	StateAwaitingAnswer

	// StateFinished means the deck is mastered or the learner quit.
	StateFinished
)

// Action tells the caller what a submitted answer led to.
type Action int

const (
	// ActionReplay re-presents the current item; the queue is unaffected.
	ActionReplay Action = iota

	// ActionGloss shows the English gloss for the current item.
	ActionGloss

	// ActionUsage means the input was outside a closed answer vocabulary:
	// remind the learner of valid answers, do not consume the turn.
	ActionUsage

	// ActionQuit abandons the session immediately, without a summary.
	ActionQuit

	// ActionCorrect advances after a correct answer.
	ActionCorrect

	// ActionIncorrect advances after a miss; the item returns to the queue.
	ActionIncorrect
)

// Turn is the result of submitting one line of input.
type Turn struct {
	Action Action

	// Item is the item the input was judged against.
	Item *Item

	// Next is the freshly drawn item to present, nil when the session
	// ended or the turn did not advance.
	Next *Item

	// Finished is true when the engine reached StateFinished.
	Finished bool

	// Quit is true when the session ended by explicit quit. No summary is
	// reported in that case.
	Quit bool
}

// Engine runs one drill session: draw an item, collect an answer, judge it,
// re-queue on failure, finish when the queue is mastered. One instance per
// mode invocation; never shared.
type Engine struct {
	queue     *Queue
	outcome   *Outcome
	deckSize  int
	current   *Item
	state     State
	quit      bool
	showGloss bool
}

// NewEngine wraps a prepared queue (already shuffled/capped by the caller).
func NewEngine(queue *Queue) *Engine {
	return &Engine{
		queue:    queue,
		outcome:  NewOutcome(),
		deckSize: queue.Len(),
	}
}

// Start draws the first item. A nil return means the deck was empty and the
// session is already finished.
func (e *Engine) Start() *Item {
	if e.state != StateLoading {
		return e.current
	}
	e.current = e.queue.Draw()
	if e.current == nil {
		e.state = StateFinished
		return nil
	}
	e.outcome.RecordPresentation()
	e.state = StateAwaitingAnswer
	return e.current
}

// State returns the engine's current state.
func (e *Engine) State() State {
	return e.state
}

// Current returns the item awaiting an answer, nil outside StateAwaitingAnswer.
func (e *Engine) Current() *Item {
	return e.current
}

// Remaining returns the number of undrawn items plus the one in hand.
func (e *Engine) Remaining() int {
	n := e.queue.Len()
	if e.current != nil {
		n++
	}
	return n
}

// GlossShown reports whether the gloss toggle is on for the current item.
func (e *Engine) GlossShown() bool {
	return e.showGloss
}

// Quit reports whether the session ended by explicit quit.
func (e *Engine) Quit() bool {
	return e.quit
}

// Summary builds the closing report. Callers must not report it for a
// session that ended by quit.
func (e *Engine) Summary() *Summary {
	return e.outcome.Summarize(e.deckSize)
}

// Submit judges one line of input against the current item and moves the
// state machine. Outside StateAwaitingAnswer it is a no-op replay.
func (e *Engine) Submit(raw string) Turn {
	if e.state != StateAwaitingAnswer {
		return Turn{Action: ActionReplay, Finished: e.state == StateFinished}
	}

	it := e.current
	switch Judge(raw, it) {
	case VerdictReplay:
		return Turn{Action: ActionReplay, Item: it}

	case VerdictGloss:
		e.showGloss = true
		return Turn{Action: ActionGloss, Item: it}

	case VerdictQuit:
		// The item in hand is dropped, not returned to the queue.
		e.state = StateFinished
		e.quit = true
		e.current = nil
		return Turn{Action: ActionQuit, Item: it, Finished: true, Quit: true}

	case VerdictCorrect:
		return e.advance(it, true)

	default:
		if !it.InClosedSet(Normalize(raw)) {
			return Turn{Action: ActionUsage, Item: it}
		}
		return e.advance(it, false)
	}
}

func (e *Engine) advance(it *Item, correct bool) Turn {
	e.showGloss = false
	action := ActionCorrect
	if !correct {
		action = ActionIncorrect
		e.outcome.RecordMiss(it)
		e.queue.Requeue(it)
	}

	e.current = e.queue.Draw()
	if e.current == nil {
		e.state = StateFinished
		return Turn{Action: action, Item: it, Finished: true}
	}
	e.outcome.RecordPresentation()
	return Turn{Action: action, Item: it, Next: e.current}
}
