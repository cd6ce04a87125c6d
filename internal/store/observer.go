package store

import "github.com/idilsaglam/tada/internal/model"

// Kind names the command that changed the collection.
type Kind int

const (
	Created Kind = iota + 1
	Toggled
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Toggled:
		return "toggled"
	case Deleted:
		return "deleted"
	}
	return "unknown"
}

// Event describes one change. Record is the record after the change;
// for Deleted it is the record that was removed.
type Event struct {
	Kind   Kind
	Record model.Record
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to run after every change, in registration order.
// No-op commands do not notify. The returned func unregisters fn and may
// be called more than once.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(ev Event) {
	// Copy so a subscriber may unsubscribe itself while being called.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}
