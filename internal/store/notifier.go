package store

import "sync"

// notifier fans a collection-change signal out to subscribers. Embedded by
// every backend so change notification behaves identically regardless of
// where the bytes live.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]ChangeFunc
}

func (n *notifier) Subscribe(fn ChangeFunc) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]ChangeFunc)
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) notify(c Collection) {
	n.mu.Lock()
	fns := make([]ChangeFunc, 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn(c)
	}
}
