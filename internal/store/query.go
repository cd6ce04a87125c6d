package store

import (
	"strings"

	"github.com/idilsaglam/tada/internal/model"
)

// Search returns records whose content contains query, ignoring case,
// in list order. An empty query returns the whole list.
func (s *Store) Search(query string) []model.Record {
	if query == "" {
		return s.List()
	}
	q := strings.ToLower(query)
	out := make([]model.Record, 0, len(s.items))
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Content), q) {
			out = append(out, it)
		}
	}
	return out
}

// Stats counts done and pending records. The result is cached until the
// next successful Create, Toggle or Delete.
func (s *Store) Stats() model.Stats {
	if s.statsValid {
		return s.stats
	}
	s.stats = Count(s.items)
	s.statsValid = true
	s.logger.Debug("stats recomputed", "total", s.stats.Total, "done", s.stats.Done)
	return s.stats
}

// Count computes stats over any slice of records.
func Count(items []model.Record) model.Stats {
	st := model.Stats{Total: len(items)}
	for _, it := range items {
		if it.IsDone {
			st.Done++
		}
	}
	st.NotDone = st.Total - st.Done
	return st
}
