// Package suggest implements the debounced autocomplete core shared by the
// location picker and the people-tag selector. It is deliberately decoupled
// from any rendering surface: callers feed it input events and it pushes
// suggestion/selection updates into a Sink.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultMinQueryLen is the minimum trimmed input length that
	// triggers a suggestion fetch.
	DefaultMinQueryLen = 2

	// DefaultDebounce is the quiet period for single-select widgets.
	DefaultDebounce = 250 * time.Millisecond

	// DefaultMultiDebounce is the quiet period for multi-select widgets.
	DefaultMultiDebounce = 200 * time.Millisecond

	// DefaultBlurGrace is how long a blur waits before clearing the
	// list, so a commit racing the blur still lands.
	DefaultBlurGrace = 150 * time.Millisecond

	// DefaultQueryTimeout bounds a single suggestion fetch.
	DefaultQueryTimeout = 10 * time.Second
)

// Item is a single suggestion candidate.
type Item struct {
	ID        string
	Name      string
	AvatarURL string
}

// QueryFunc fetches candidates for a trimmed query string.
type QueryFunc func(ctx context.Context, query string) ([]Item, error)

// Sink receives rendering updates from a widget. Implementations must be
// safe to call from other goroutines: debounce timers and query completions
// do not run on the caller's goroutine.
type Sink interface {
	// ShowSuggestions replaces the rendered candidate list. An empty
	// slice means hide the list.
	ShowSuggestions(items []Item)

	// ShowSelections replaces the rendered chip list (multi-select only).
	ShowSelections(items []Item)

	// SetInput replaces the text shown in the query input.
	SetInput(text string)
}

// Options configures a widget.
type Options struct {
	// MultiSelect keeps an ordered selection set instead of committing
	// into the input text.
	MultiSelect bool

	// SelfID is never committed and never rendered as a candidate
	// (multi-select only).
	SelfID string

	// MinQueryLen defaults to DefaultMinQueryLen.
	MinQueryLen int

	// Debounce defaults to DefaultDebounce (DefaultMultiDebounce when
	// MultiSelect is set).
	Debounce time.Duration

	// BlurGrace defaults to DefaultBlurGrace.
	BlurGrace time.Duration

	// QueryTimeout defaults to DefaultQueryTimeout.
	QueryTimeout time.Duration

	// OnCommit is invoked after a suggestion is committed.
	OnCommit func(Item)
}

// Widget is a debounced suggestion controller. All methods are safe for
// concurrent use.
type Widget struct {
	query QueryFunc
	sink  Sink
	opts  Options

	mu         sync.Mutex
	text       string
	items      []Item
	selections []Item
	timer      *time.Timer
	blurTimer  *time.Timer

	// seq tags the latest dispatched query. A response whose tag no
	// longer matches is stale and dropped: the rendered list always
	// reflects the most recently dispatched query, not the most
	// recently arrived response.
	seq uint64
}

// New creates a widget around a query function and a sink.
func New(query QueryFunc, sink Sink, opts Options) *Widget {
	if opts.MinQueryLen <= 0 {
		opts.MinQueryLen = DefaultMinQueryLen
	}
	if opts.Debounce <= 0 {
		if opts.MultiSelect {
			opts.Debounce = DefaultMultiDebounce
		} else {
			opts.Debounce = DefaultDebounce
		}
	}
	if opts.BlurGrace <= 0 {
		opts.BlurGrace = DefaultBlurGrace
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}

	return &Widget{
		query: query,
		sink:  sink,
		opts:  opts,
	}
}

// Input reports the input field's current text. It cancels any pending
// fetch and any pending blur clear, and, when the trimmed text is long
// enough, restarts the debounce timer.
func (w *Widget) Input(text string) {
	w.mu.Lock()

	w.text = text
	w.cancelTimerLocked()
	// Typing implies focus: a pending blur clear must not wipe what
	// this edit is about to fetch.
	w.cancelBlurLocked()

	// The field no longer shows the text any in-flight fetch was
	// dispatched for, so that fetch's result is stale by definition.
	w.seq++

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < w.opts.MinQueryLen {
		w.items = nil
		w.mu.Unlock()
		w.sink.ShowSuggestions(nil)
		return
	}

	w.timer = time.AfterFunc(w.opts.Debounce, func() {
		w.dispatch(trimmed)
	})
	w.mu.Unlock()
}

// dispatch runs on the debounce timer's goroutine.
func (w *Widget) dispatch(query string) {
	w.mu.Lock()
	w.seq++
	tag := w.seq
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), w.opts.QueryTimeout)
	defer cancel()

	items, err := w.query(ctx, query)
	if err != nil {
		// Suggestion fetches are best effort: failures degrade to an
		// empty list, never an error in the hosting form.
		items = nil
	}

	w.mu.Lock()
	if tag != w.seq {
		// A newer query was dispatched while this one was in flight.
		w.mu.Unlock()
		return
	}
	w.items = w.filterLocked(items)
	rendered := copyItems(w.items)
	w.mu.Unlock()

	w.sink.ShowSuggestions(rendered)
}

// filterLocked drops candidates that are already selected or that refer to
// the widget's own user.
func (w *Widget) filterLocked(items []Item) []Item {
	if !w.opts.MultiSelect {
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == w.opts.SelfID {
			continue
		}
		if w.isSelectedLocked(it.ID) {
			continue
		}
		filtered = append(filtered, it)
	}
	return filtered
}

func (w *Widget) isSelectedLocked(id string) bool {
	for _, s := range w.selections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// CommitAt commits the rendered suggestion at index. Out-of-range indexes
// are ignored.
func (w *Widget) CommitAt(index int) {
	w.mu.Lock()
	if index < 0 || index >= len(w.items) {
		w.mu.Unlock()
		return
	}
	item := w.items[index]
	w.mu.Unlock()

	w.Commit(item)
}

// Commit commits a suggestion. Single-select replaces the input text;
// multi-select appends to the selection set, skipping duplicates and the
// configured self ID. Committing always beats a pending blur clear.
func (w *Widget) Commit(item Item) {
	w.mu.Lock()

	// Commit-before-clear: a pending blur must not wipe this commit.
	w.cancelBlurLocked()
	w.cancelTimerLocked()
	w.seq++
	w.items = nil

	if !w.opts.MultiSelect {
		w.text = item.Name
		w.mu.Unlock()

		w.sink.SetInput(item.Name)
		w.sink.ShowSuggestions(nil)
		if w.opts.OnCommit != nil {
			w.opts.OnCommit(item)
		}
		return
	}

	if item.ID == w.opts.SelfID || w.isSelectedLocked(item.ID) {
		w.mu.Unlock()
		w.sink.ShowSuggestions(nil)
		return
	}

	w.selections = append(w.selections, item)
	w.text = ""
	selections := copyItems(w.selections)
	w.mu.Unlock()

	w.sink.SetInput("")
	w.sink.ShowSuggestions(nil)
	w.sink.ShowSelections(selections)
	if w.opts.OnCommit != nil {
		w.opts.OnCommit(item)
	}
}

// Remove drops a committed selection by ID (multi-select only).
func (w *Widget) Remove(id string) {
	w.mu.Lock()
	kept := w.selections[:0]
	removed := false
	for _, s := range w.selections {
		if s.ID == id {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	w.selections = kept
	selections := copyItems(w.selections)
	w.mu.Unlock()

	if removed {
		w.sink.ShowSelections(selections)
	}
}

// Blur schedules the suggestion list to clear after the grace delay. A
// commit arriving within the grace window cancels the clear.
func (w *Widget) Blur() {
	w.mu.Lock()
	w.cancelBlurLocked()
	w.blurTimer = time.AfterFunc(w.opts.BlurGrace, func() {
		w.mu.Lock()
		w.seq++
		w.items = nil
		w.mu.Unlock()
		w.sink.ShowSuggestions(nil)
	})
	w.mu.Unlock()
}

// Reset returns the widget to its post-construction state: empty input,
// empty list, no pending timer, empty selections.
func (w *Widget) Reset() {
	w.mu.Lock()
	w.cancelTimerLocked()
	w.cancelBlurLocked()
	w.seq++
	w.text = ""
	w.items = nil
	w.selections = nil
	w.mu.Unlock()

	w.sink.SetInput("")
	w.sink.ShowSuggestions(nil)
	if w.opts.MultiSelect {
		w.sink.ShowSelections(nil)
	}
}

// Value returns the input's current text (the committed value in
// single-select mode).
func (w *Widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.text
}

// Suggestions returns the currently rendered candidate list.
func (w *Widget) Suggestions() []Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyItems(w.items)
}

// Selections returns the committed selection set in insertion order.
func (w *Widget) Selections() []Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyItems(w.selections)
}

func (w *Widget) cancelTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Widget) cancelBlurLocked() {
	if w.blurTimer != nil {
		w.blurTimer.Stop()
		w.blurTimer = nil
	}
}

func copyItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
