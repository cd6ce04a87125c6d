package model

import "time"

// Record is a single todo entry.
// Content and CreateDate never change after creation; only IsDone flips.
type Record struct {
	ID         int    `json:"id"`
	Content    string `json:"content"`
	IsDone     bool   `json:"isDone"`
	CreateDate int64  `json:"createDate"` // ms since epoch
}

// Created returns CreateDate as a local time.Time.
func (r Record) Created() time.Time { return time.UnixMilli(r.CreateDate) }

// Stats are the derived counts over a collection.
type Stats struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	NotDone int `json:"notDone"`
}

// Percent is the done share rounded down, 0 for an empty collection.
func (s Stats) Percent() int {
	if s.Total <= 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}
