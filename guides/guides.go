package guides

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"arone/db"
	"arone/models"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func genID() string {
	return "gd" + utils.GenerateRandomDigitString(8)
}

func GetGuides(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	guides, err := store.GetAllGuides(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch guides", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"guides": guides})
}

func GetGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	guideID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var guide models.Guide
	err := db.GuidesCollection.FindOne(ctx, bson.M{"guideId": guideID}).Decode(&guide)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Guide not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"guide": guide})
}

func CreateGuide(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var guide models.Guide
	if err := json.NewDecoder(r.Body).Decode(&guide); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if guide.Name == "" || guide.PerDay < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	guide.GuideID = genID()
	now := time.Now()
	guide.CreatedAt = now
	guide.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.GuidesCollection.InsertOne(ctx, guide); err != nil {
		http.Error(w, "Failed to create guide", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"guide": guide})
}

// buildUpdate maps the non-zero input fields to a $set document.
func buildUpdate(input models.Guide) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		update["name"] = input.Name
	}
	if input.Speciality != "" {
		update["speciality"] = input.Speciality
	}
	if input.Languages != nil {
		update["languages"] = input.Languages
	}
	if input.Rating > 0 {
		update["rating"] = input.Rating
	}
	if input.PerDay > 0 {
		update["perDay"] = input.PerDay
	}
	if input.Phone != "" {
		update["phone"] = input.Phone
	}
	if input.Photo != "" {
		update["photo"] = input.Photo
	}
	return update
}

func EditGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	guideID := ps.ByName("id")

	var input models.Guide
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := buildUpdate(input)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.GuidesCollection.UpdateOne(ctx, bson.M{"guideId": guideID}, bson.M{"$set": update})
	if err != nil {
		http.Error(w, "Failed to update guide", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Guide not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func DeleteGuide(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	guideID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.GuidesCollection.DeleteOne(ctx, bson.M{"guideId": guideID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Guide not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
