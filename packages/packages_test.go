package packages

import (
	"testing"

	"arone/models"
)

func TestBuildUpdateIncludesRating(t *testing.T) {
	update := buildUpdate(models.TourPackage{Title: "Hill Country Escape", Rating: 4.5})

	if update["title"] != "Hill Country Escape" {
		t.Errorf("Expected title in update, got %+v", update)
	}
	if update["rating"] != 4.5 {
		t.Errorf("Expected rating 4.5 in update, got %+v", update)
	}
}

func TestBuildUpdateSkipsZeroFields(t *testing.T) {
	update := buildUpdate(models.TourPackage{Price: 1200})

	if _, ok := update["rating"]; ok {
		t.Error("Zero rating must not be written")
	}
	if _, ok := update["title"]; ok {
		t.Error("Empty title must not be written")
	}
	if update["price"] != float64(1200) {
		t.Errorf("Expected price 1200 in update, got %+v", update)
	}
	if _, ok := update["updatedAt"]; !ok {
		t.Error("updatedAt must always be written")
	}
}
