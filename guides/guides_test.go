package guides

import (
	"testing"

	"arone/models"
)

func TestBuildUpdateIncludesRatingAndPhoto(t *testing.T) {
	update := buildUpdate(models.Guide{Rating: 4.8, Photo: "gd123.jpg"})

	if update["rating"] != 4.8 {
		t.Errorf("Expected rating 4.8 in update, got %+v", update)
	}
	if update["photo"] != "gd123.jpg" {
		t.Errorf("Expected photo in update, got %+v", update)
	}
}

func TestBuildUpdateSkipsZeroFields(t *testing.T) {
	update := buildUpdate(models.Guide{Name: "Kumara"})

	if _, ok := update["rating"]; ok {
		t.Error("Zero rating must not be written")
	}
	if _, ok := update["photo"]; ok {
		t.Error("Empty photo must not be written")
	}
	if update["name"] != "Kumara" {
		t.Errorf("Expected name in update, got %+v", update)
	}
}
