package gui

import "github.com/appengine-ltd/runecast/internal/recognition"

// castQueue is the pad's spell dispatcher: the engine enqueues requests and
// the render loop drains them into on-screen effects.
type castQueue struct {
	ch chan recognition.CastRequest
}

func newCastQueue(size int) *castQueue {
	if size < 1 {
		size = 16
	}
	return &castQueue{ch: make(chan recognition.CastRequest, size)}
}

// Cast accepts the request unless the queue is saturated, in which case the
// cast is rejected and the engine keeps its runes.
func (q *castQueue) Cast(req recognition.CastRequest) bool {
	if q == nil {
		return false
	}
	select {
	case q.ch <- req:
		return true
	default:
		return false
	}
}

func (q *castQueue) Dequeue() (recognition.CastRequest, bool) {
	if q == nil {
		return recognition.CastRequest{}, false
	}
	select {
	case req := <-q.ch:
		return req, true
	default:
		return recognition.CastRequest{}, false
	}
}
