package packages

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"arone/db"
	"arone/globals"
	"arone/models"
	"arone/mq"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func genID() string {
	return "pkg" + utils.GenerateRandomDigitString(8)
}

func GetPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := store.GetAllPackages(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch packages", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"packages": packages})
}

func GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var pkg models.TourPackage
	err := db.PackagesCollection.FindOne(ctx, bson.M{"packageId": packageID}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Package not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"package": pkg})
}

func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var pkg models.TourPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if pkg.Title == "" || pkg.Price < 0 || pkg.Days < 1 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	pkg.PackageID = genID()
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.PackagesCollection.InsertOne(ctx, pkg); err != nil {
		http.Error(w, "Failed to create package", http.StatusInternalServerError)
		return
	}

	go mq.Emit(globals.Ctx, "package-created", models.Index{EntityType: "package", EntityId: pkg.PackageID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"package": pkg})
}

// buildUpdate maps the non-zero input fields to a $set document. Gallery is
// managed through the upload endpoints and never set here.
func buildUpdate(input models.TourPackage) bson.M {
	update := bson.M{"updatedAt": time.Now()}
	if input.Title != "" {
		update["title"] = input.Title
	}
	if input.Description != "" {
		update["description"] = input.Description
	}
	if input.Location != "" {
		update["location"] = input.Location
	}
	if input.Days > 0 {
		update["days"] = input.Days
	}
	if input.Price > 0 {
		update["price"] = input.Price
	}
	if input.Rating > 0 {
		update["rating"] = input.Rating
	}
	if input.Hotels != nil {
		update["hotels"] = input.Hotels
	}
	return update
}

func EditPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("id")

	var input models.TourPackage
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := buildUpdate(input)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.UpdateOne(ctx, bson.M{"packageId": packageID}, bson.M{"$set": update})
	if err != nil {
		http.Error(w, "Failed to update package", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	go mq.Emit(globals.Ctx, "package-updated", models.Index{EntityType: "package", EntityId: packageID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.DeleteOne(ctx, bson.M{"packageId": packageID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	go mq.Emit(globals.Ctx, "package-deleted", models.Index{EntityType: "package", EntityId: packageID, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}
