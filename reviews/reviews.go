package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"arone/db"
	"arone/globals"
	"arone/models"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetReviews lists reviews for a package, newest first.
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	packageID := ps.ByName("packageId")

	skip, limit := utils.ParsePagination(r, 10, 100)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := db.ReviewsCollection.Find(ctx, bson.M{"packageId": packageID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	defer cur.Close(ctx)

	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"status": http.StatusOK, "ok": true, "reviews": reviews})
}

// AddReview creates one review per user per package.
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	packageID := ps.ByName("packageId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"userId":    userID,
		"packageId": packageID,
	})
	if err != nil {
		log.Printf("Error checking for existing review: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "You have already reviewed this package", http.StatusConflict)
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 || review.Comment == "" {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}

	username, _ := r.Context().Value(globals.UsernameKey).(string)

	review.ReviewID = utils.GenerateRandomString(16)
	review.UserID = userID
	review.Author = username
	review.PackageID = packageID
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		http.Error(w, "Failed to insert review", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"review": review})
}

// GetAllReviews is the admin moderation listing across every package.
func GetAllReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reviews, err := store.GetAllReviews(r.Context())
	if err != nil {
		log.Printf("Failed to list reviews: %v", err)
		http.Error(w, "Failed to fetch reviews", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

// DeleteReview removes a review (admin moderation).
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviewID := ps.ByName("reviewId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewId": reviewID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
