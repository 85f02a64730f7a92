package offers

import (
	"testing"

	"arone/models"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Get(key string) (string, error) { return m.data[key], nil }
func (m *memKV) Set(key, value string) error    { m.data[key] = value; return nil }

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	svc := NewService(newMemKV())

	var last int64
	for i := 0; i < 4; i++ {
		o, err := svc.Create(models.Offer{Title: "Summer deal", Code: "sun10"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if o.ID <= last {
			t.Errorf("Expected strictly increasing id, got %d after %d", o.ID, last)
		}
		last = o.ID
	}

	offers, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(offers) != 4 {
		t.Errorf("Expected 4 offers, got %d", len(offers))
	}
}

func TestCreateUppercasesCode(t *testing.T) {
	svc := NewService(newMemKV())

	o, err := svc.Create(models.Offer{Title: "Coast special", Code: " beach25 "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if o.Code != "BEACH25" {
		t.Errorf("Expected uppercased trimmed code, got %q", o.Code)
	}
}

func TestIDsStayUniqueAfterDelete(t *testing.T) {
	svc := NewService(newMemKV())

	a, _ := svc.Create(models.Offer{Title: "A", Code: "A"})
	b, _ := svc.Create(models.Offer{Title: "B", Code: "B"})

	if err := svc.Delete(a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	c, err := svc.Create(models.Offer{Title: "C", Code: "C"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.ID == b.ID {
		t.Errorf("Duplicate id %d assigned", c.ID)
	}
	if c.ID <= b.ID {
		t.Errorf("Expected id above %d, got %d", b.ID, c.ID)
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	kv := newMemKV()
	svc := NewService(kv)

	svc.Create(models.Offer{Title: "Only", Code: "ONLY"})
	before := kv.data["offers"]

	if err := svc.Delete(999); err != nil {
		t.Fatalf("Delete of absent id errored: %v", err)
	}
	if kv.data["offers"] != before {
		t.Error("Deleting a non-existent id changed the stored list")
	}
}

func TestToggle(t *testing.T) {
	svc := NewService(newMemKV())

	o, _ := svc.Create(models.Offer{Title: "Toggle me", Code: "T", Active: true})

	found, err := svc.Toggle(o.ID)
	if err != nil || !found {
		t.Fatalf("Toggle failed: found=%v err=%v", found, err)
	}

	offers, _ := svc.List()
	if offers[0].Active {
		t.Error("Expected offer to be inactive after toggle")
	}

	found, err = svc.Toggle(12345)
	if err != nil {
		t.Fatalf("Toggle of absent id errored: %v", err)
	}
	if found {
		t.Error("Toggle of absent id reported found")
	}
}
