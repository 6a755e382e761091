package install

import "errors"

// ErrBootstrapFailed is the fatal condition: pip was absent and ensurepip
// could not provision it, so no install or uninstall command was ever run.
var ErrBootstrapFailed = errors.New("pip bootstrap failed")

// Tone classifies a progress line for rendering.
type Tone int

const (
	ToneInfo Tone = iota
	ToneWarn
	ToneGood
)

// Event is one item on a run's event stream. A run emits zero or more
// progress events followed by exactly one terminal event, then the stream
// closes.
type Event struct {
	// Text is the progress line for non-terminal events.
	Text string
	// Tone hints how to render Text.
	Tone Tone
	// Terminal marks the final event.
	Terminal bool
	// Result is set on the terminal event of a run that acted on the
	// environment.
	Result *Result
	// Err is set instead of Result when the run died fatally.
	Err error
}

func progressEvent(text string) Event {
	return Event{Text: text}
}

func warnEvent(text string) Event {
	return Event{Text: text, Tone: ToneWarn}
}

func goodEvent(text string) Event {
	return Event{Text: text, Tone: ToneGood}
}

func finishedEvent(res *Result) Event {
	return Event{Terminal: true, Result: res}
}

func fatalEvent(err error) Event {
	return Event{Terminal: true, Err: err}
}
