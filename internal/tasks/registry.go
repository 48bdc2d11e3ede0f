// Package tasks tracks in-flight asynchronous work by purpose. Starting a
// task cancels the previous task with the same purpose, so only the latest
// request for "search" or "details" may commit its result.
package tasks

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSuperseded is returned by work whose result was discarded because a
// newer task with the same purpose started, or the task was cancelled.
var ErrSuperseded = errors.New("superseded by a newer request")

// Token identifies one started task.
type Token struct {
	Purpose string
	ID      string
}

type task struct {
	id     string
	cancel context.CancelFunc
}

type Registry struct {
	mu      sync.Mutex
	running map[string]task
}

func NewRegistry() *Registry {
	return &Registry{running: make(map[string]task)}
}

// Start registers a new task for purpose and cancels the one it replaces.
// The returned context is cancelled when the task is superseded, cancelled
// or finished.
func (r *Registry) Start(parent context.Context, purpose string) (context.Context, Token) {
	ctx, cancel := context.WithCancel(parent)
	tok := Token{Purpose: purpose, ID: uuid.NewString()}

	r.mu.Lock()
	if prev, ok := r.running[purpose]; ok {
		prev.cancel()
	}
	r.running[purpose] = task{id: tok.ID, cancel: cancel}
	r.mu.Unlock()

	return ctx, tok
}

// current reports whether tok is still the latest task for its purpose.
func (r *Registry) current(tok Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.running[tok.Purpose]
	return ok && t.id == tok.ID
}

// Finish ends the task. It returns true when tok was still current, which
// is the caller's licence to commit the result.
func (r *Registry) Finish(tok Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.running[tok.Purpose]
	if !ok || t.id != tok.ID {
		return false
	}
	t.cancel()
	delete(r.running, tok.Purpose)
	return true
}

// Cancel aborts the current task for purpose, if any.
func (r *Registry) Cancel(purpose string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.running[purpose]; ok {
		t.cancel()
		delete(r.running, purpose)
	}
}

// CancelAll aborts every running task.
func (r *Registry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for purpose, t := range r.running {
		t.cancel()
		delete(r.running, purpose)
	}
}

// inFlight is the number of tasks in flight.
func (r *Registry) inFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.running)
}
