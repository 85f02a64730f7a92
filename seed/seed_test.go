package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeStore keeps collections in memory and can be told to fail.
type fakeStore struct {
	data    map[string][]interface{}
	failOn  string
	failErr error
	inserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]interface{})}
}

func (f *fakeStore) Count(_ context.Context, collection string) (int64, error) {
	if f.failOn == "count:"+collection {
		return 0, f.failErr
	}
	return int64(len(f.data[collection])), nil
}

func (f *fakeStore) InsertMany(_ context.Context, collection string, docs []interface{}) error {
	if f.failOn == "insert:"+collection {
		return f.failErr
	}
	f.data[collection] = append(f.data[collection], docs...)
	f.inserts += len(docs)
	return nil
}

func TestSeedEmptyStore(t *testing.T) {
	store := newFakeStore()
	engine := New(store)

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(report.Results) != 5 {
		t.Fatalf("Expected 5 results, got %d", len(report.Results))
	}
	for _, res := range report.Results {
		if res.Status != StatusSeeded {
			t.Errorf("Collection %s: expected seeded, got %s", res.Collection, res.Status)
		}
		if res.Inserted == 0 {
			t.Errorf("Collection %s: expected fixtures inserted", res.Collection)
		}
		if len(store.data[res.Collection]) != res.Inserted {
			t.Errorf("Collection %s: store holds %d docs, report says %d",
				res.Collection, len(store.data[res.Collection]), res.Inserted)
		}
	}

	if !strings.Contains(report.Message(), "Added") {
		t.Errorf("Expected an Added line in message, got %q", report.Message())
	}
}

func TestSeedIsIdempotentPerCollection(t *testing.T) {
	store := newFakeStore()
	engine := New(store)

	if _, err := engine.Run(context.Background()); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	before := store.inserts

	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if store.inserts != before {
		t.Errorf("Second run inserted %d new records", store.inserts-before)
	}
	for _, res := range report.Results {
		if res.Status != StatusSkipped {
			t.Errorf("Collection %s: expected skipped on rerun, got %s", res.Collection, res.Status)
		}
	}
	if !strings.Contains(report.Message(), "already exist. Skipped.") {
		t.Errorf("Expected skip message, got %q", report.Message())
	}
}

func TestSeedPartialState(t *testing.T) {
	store := newFakeStore()
	store.data["packages"] = []interface{}{struct{}{}} // pre-populated

	report, err := New(store).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	seeded := 0
	for _, res := range report.Results {
		switch res.Collection {
		case "packages":
			if res.Status != StatusSkipped {
				t.Errorf("Expected packages skipped, got %s", res.Status)
			}
		default:
			if res.Status != StatusSeeded {
				t.Errorf("Collection %s: expected seeded, got %s", res.Collection, res.Status)
			}
			seeded++
		}
	}
	if seeded != 4 {
		t.Errorf("Expected exactly 4 seeded collections, got %d", seeded)
	}
}

func TestSeedAbortsOnFailure(t *testing.T) {
	store := newFakeStore()
	store.failOn = "insert:bookings"
	store.failErr = errors.New("write refused")

	report, err := New(store).Run(context.Background())
	if err == nil {
		t.Fatal("Expected the underlying error to surface")
	}
	if !errors.Is(err, store.failErr) {
		t.Errorf("Expected raw error, got %v", err)
	}

	// packages and guides seeded, bookings failed, contacts/reviews never
	// attempted
	if len(report.Results) != 3 {
		t.Fatalf("Expected 3 results before abort, got %d", len(report.Results))
	}
	if report.Results[2].Collection != "bookings" || report.Results[2].Status != StatusFailed {
		t.Errorf("Expected bookings failure recorded, got %+v", report.Results[2])
	}
	// earlier collections are not rolled back
	if len(store.data["packages"]) == 0 || len(store.data["guides"]) == 0 {
		t.Error("Earlier seeded collections must be left in place")
	}
	if len(store.data["contacts"]) != 0 || len(store.data["reviews"]) != 0 {
		t.Error("Collections after the failure must not be touched")
	}
}

func TestSeedCountFailureAborts(t *testing.T) {
	store := newFakeStore()
	store.failOn = "count:packages"
	store.failErr = errors.New("read refused")

	report, err := New(store).Run(context.Background())
	if err == nil {
		t.Fatal("Expected error from failed count")
	}
	if len(report.Results) != 1 || report.Results[0].Status != StatusFailed {
		t.Errorf("Expected single failed result, got %+v", report.Results)
	}
	if store.inserts != 0 {
		t.Errorf("Expected no inserts, got %d", store.inserts)
	}
}
