// Package store owns the in-memory todo collection.
//
// A Store holds records newest-first and hands out copies; consumers issue
// commands (Create, Toggle, Delete) and re-read the views they need, or
// register with Subscribe to be told when the collection changed.
//
// A Store is not safe for concurrent use. Drive it from one goroutine.
package store

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/model"
)

// Store is the todo collection plus its id counter.
type Store struct {
	items  []model.Record // newest first
	nextID int

	now    func() time.Time
	logger *log.Logger

	stats      model.Stats
	statsValid bool

	subs    []subscriber
	nextSub int
}

// Option configures a Store at construction.
type Option func(*config)

type config struct {
	now    func() time.Time
	logger *log.Logger
	seed   []model.Record
	seeded bool
}

// WithClock sets the time source used for CreateDate.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed replaces the default example dataset. A nil or empty slice
// starts the store empty. Records repeating an earlier id are dropped, and
// the id counter starts at len(seed) or past the highest seeded id,
// whichever is larger.
func WithSeed(seed []model.Record) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// New returns a store seeded with the example dataset unless WithSeed
// says otherwise.
func New(opts ...Option) *Store {
	c := &config{
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	seed := c.seed
	if !c.seeded {
		seed = DefaultSeed(c.now())
	}
	items, nextID := seedItems(seed)
	if dropped := len(seed) - len(items); dropped > 0 {
		c.logger.Warn("seed has duplicate ids", "dropped", dropped)
	}

	return &Store{
		items:  items,
		nextID: nextID,
		now:    c.now,
		logger: c.logger,
	}
}

// Create prepends a new record with the trimmed content.
// Blank content is ignored and reports false.
func (s *Store) Create(content string) bool {
	content = strings.TrimSpace(content)
	if content == "" {
		s.logger.Debug("create ignored", "reason", "empty content")
		return false
	}
	rec := model.Record{
		ID:         s.nextID,
		Content:    content,
		IsDone:     false,
		CreateDate: s.now().UnixMilli(),
	}
	s.items = append([]model.Record{rec}, s.items...)
	s.nextID++

	s.logger.Debug("created", "id", rec.ID, "content", rec.Content)
	s.changed(Event{Kind: Created, Record: rec})
	return true
}

// Toggle flips IsDone of the record with the given id.
// An unknown id is a no-op and reports false.
func (s *Store) Toggle(id int) bool {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("toggle ignored", "id", id, "reason", "not found")
		return false
	}
	s.items[i].IsDone = !s.items[i].IsDone
	rec := s.items[i]

	s.logger.Debug("toggled", "id", id, "done", rec.IsDone)
	s.changed(Event{Kind: Toggled, Record: rec})
	return true
}

// Delete removes the record with the given id, keeping the order of the rest.
// An unknown id is a no-op and reports false.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("delete ignored", "id", id, "reason", "not found")
		return false
	}
	rec := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)

	s.logger.Debug("deleted", "id", id)
	s.changed(Event{Kind: Deleted, Record: rec})
	return true
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []model.Record {
	out := make([]model.Record, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of live records.
func (s *Store) Len() int { return len(s.items) }

// Get looks a record up by id.
func (s *Store) Get(id int) (model.Record, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Record{}, false
	}
	return s.items[i], true
}

// NextID is the id the next successful Create will assign.
func (s *Store) NextID() int { return s.nextID }

// seedItems copies seed without repeated ids and picks the first id
// Create may hand out.
func seedItems(seed []model.Record) ([]model.Record, int) {
	items := make([]model.Record, 0, len(seed))
	seen := make(map[int]bool, len(seed))
	next := len(seed)
	for _, r := range seed {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		items = append(items, r)
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return items, next
}

func (s *Store) index(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) changed(ev Event) {
	s.statsValid = false
	s.notify(ev)
}
