package store

import (
	"time"

	"github.com/idilsaglam/tada/internal/model"
)

// DefaultSeed is the example dataset a new store starts with:
// five records, ids 0..4, only id 3 done, all stamped with now.
func DefaultSeed(now time.Time) []model.Record {
	ts := now.UnixMilli()
	return []model.Record{
		{ID: 0, Content: "Study React", CreateDate: ts},
		{ID: 1, Content: "Study MySQL", CreateDate: ts},
		{ID: 2, Content: "Preview Java", CreateDate: ts},
		{ID: 3, Content: "Study JavaScript", IsDone: true, CreateDate: ts},
		{ID: 4, Content: "Preview Spring", CreateDate: ts},
	}
}
