// Package seed populates the shared collections with demo fixtures. Each
// collection is seeded independently and only when it is empty, so re-running
// converges: non-empty collections stay untouched, empty ones get filled.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is the narrow write port the engine needs. The production
// implementation sits on Mongo; tests use a fake.
type Store interface {
	Count(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []interface{}) error
}

type Status string

const (
	StatusSeeded  Status = "seeded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result records the outcome for one collection.
type Result struct {
	Collection string `json:"collection"`
	Status     Status `json:"status"`
	Inserted   int    `json:"inserted"`
	Err        error  `json:"-"`
}

type Report struct {
	Results []Result `json:"results"`
}

// Message renders the per-collection report in the form shown to the admin.
func (r Report) Message() string {
	parts := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		name := res.Collection
		switch res.Status {
		case StatusSeeded:
			parts = append(parts, fmt.Sprintf("Added %d %s.", res.Inserted, name))
		case StatusSkipped:
			parts = append(parts, fmt.Sprintf("%s already exist. Skipped.", title(name)))
		case StatusFailed:
			parts = append(parts, fmt.Sprintf("Seeding %s failed: %v.", name, res.Err))
		}
	}
	return strings.Join(parts, " ")
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type Engine struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Run seeds every empty collection in fixed order. The first read or write
// failure aborts the remaining collections; earlier collections are not
// rolled back, and a collection that failed mid-insert may hold a subset of
// its fixtures. Both the partial report and the error are returned.
//
// Two admins triggering Run at the same time are not guarded against each
// other; both may observe an empty collection and insert duplicates.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	var report Report

	for _, coll := range seedOrder {
		n, err := e.store.Count(ctx, coll)
		if err != nil {
			report.Results = append(report.Results, Result{Collection: coll, Status: StatusFailed, Err: err})
			return report, err
		}

		if n > 0 {
			report.Results = append(report.Results, Result{Collection: coll, Status: StatusSkipped})
			continue
		}

		docs := fixturesFor(coll, e.now())
		if err := e.store.InsertMany(ctx, coll, docs); err != nil {
			report.Results = append(report.Results, Result{Collection: coll, Status: StatusFailed, Err: err})
			return report, err
		}

		report.Results = append(report.Results, Result{Collection: coll, Status: StatusSeeded, Inserted: len(docs)})
	}

	return report, nil
}
