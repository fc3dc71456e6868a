// Package outcome tracks the lifecycle of one backend request per panel:
// Idle, then Pending, then Succeeded or Failed. Requests run as bubbletea
// commands and report back with a ResultMsg stamped with the tracker's
// owner and sequence, so late results from an abandoned request are
// recognised and dropped.
package outcome

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome is a snapshot of a tracker. Value is meaningful only when
// State is Succeeded, Err only when it is Failed.
type Outcome[T any] struct {
	State State
	Value T
	Err   error
}

// ResultMsg carries the result of a tracked request back into Update.
type ResultMsg[T any] struct {
	Owner uint64
	Seq   uint64
	Value T
	Err   error
}

var owners atomic.Uint64

// Tracker runs at most one request at a time and holds its outcome.
type Tracker[T any] struct {
	owner   uint64
	seq     uint64
	ctx     context.Context
	stop    context.CancelFunc
	cancel  context.CancelFunc
	closed  bool
	current Outcome[T]
}

// NewTracker returns an Idle tracker whose requests run under parent.
// Every tracker gets a process-unique owner id.
func NewTracker[T any](parent context.Context) *Tracker[T] {
	ctx, stop := context.WithCancel(parent)
	return &Tracker[T]{
		owner: owners.Add(1),
		ctx:   ctx,
		stop:  stop,
	}
}

func (t *Tracker[T]) Owner() uint64       { return t.owner }
func (t *Tracker[T]) Outcome() Outcome[T] { return t.current }
func (t *Tracker[T]) State() State        { return t.current.State }
func (t *Tracker[T]) Pending() bool       { return t.current.State == Pending }

// Submit moves the tracker to Pending and returns the command that runs
// fn. It returns nil, leaving the state untouched, while a request is
// already pending or after Close.
func (t *Tracker[T]) Submit(fn func(ctx context.Context) (T, error)) tea.Cmd {
	if t.closed || t.current.State == Pending {
		return nil
	}
	t.seq++
	ctx, cancel := context.WithCancel(t.ctx)
	t.cancel = cancel
	t.current = Outcome[T]{State: Pending}

	owner, seq := t.owner, t.seq
	return func() tea.Msg {
		defer cancel()
		v, err := fn(ctx)
		return ResultMsg[T]{Owner: owner, Seq: seq, Value: v, Err: err}
	}
}

// Resolve applies msg if it answers this tracker's pending request and
// reports whether it did.
func (t *Tracker[T]) Resolve(msg ResultMsg[T]) bool {
	if t.closed || msg.Owner != t.owner || msg.Seq != t.seq || t.current.State != Pending {
		return false
	}
	t.cancel = nil
	if msg.Err != nil {
		t.current = Outcome[T]{State: Failed, Err: msg.Err}
	} else {
		t.current = Outcome[T]{State: Succeeded, Value: msg.Value}
	}
	return true
}

// Close cancels any in-flight request. A closed tracker accepts no new
// submissions and ignores every result.
func (t *Tracker[T]) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.stop()
}
