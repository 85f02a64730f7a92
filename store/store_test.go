package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestListOptionsSortNewestFirst(t *testing.T) {
	opts := listOptions()

	sortSpec, ok := opts.Sort.(bson.D)
	if !ok {
		t.Fatalf("Expected bson.D sort spec, got %T", opts.Sort)
	}
	if len(sortSpec) != 1 || sortSpec[0].Key != "createdAt" || sortSpec[0].Value != -1 {
		t.Errorf("Expected createdAt descending, got %+v", sortSpec)
	}
}
