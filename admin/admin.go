package admin

import (
	"context"
	"net/http"
	"time"

	"arone/access"
	"arone/db"
	"arone/models"
	"arone/store"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetUsers returns every registered user for the admin user table.
// Password and refresh token fields never serialize.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users, err := store.GetAllUsers(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to fetch users"}`, http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"users": users})
}

// DeleteUser removes a user account. The administrator account cannot be
// deleted; losing it would lock the back office.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var target models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&target); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if access.IsCurrentUserAdmin(&target) {
		http.Error(w, "Cannot delete the administrator account", http.StatusForbidden)
		return
	}

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": userID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
