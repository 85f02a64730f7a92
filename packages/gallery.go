package packages

import (
	"context"
	"net/http"
	"time"

	"arone/db"
	"arone/models"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const galleryDir = "static/packagepic"

// UploadGalleryImage accepts one multipart image, stores it with a
// thumbnail, and appends the filename to the package gallery.
func UploadGalleryImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	packageID := ps.ByName("id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	filename, err := utils.SaveImageWithThumb(file, header, galleryDir)
	if err != nil {
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.PackagesCollection.UpdateOne(
		ctx,
		bson.M{"packageId": packageID},
		bson.M{
			"$push": bson.M{"gallery": filename},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		http.Error(w, "Failed to update gallery", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Package not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"filename": filename})
}

// GetGallery returns the gallery filenames for a package.
func GetGallery(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	gallery := pkg.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"gallery": gallery})
}
