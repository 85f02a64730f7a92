package contacts

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
)

// SubmitContact is the public contact form endpoint. New messages start
// pending.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	contact := models.Contact{
		ContactID: utils.GetUUID(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.ContactPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ContactsCollection.InsertOne(ctx, contact); err != nil {
		http.Error(w, "Failed to submit message", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusCreated, map[string]string{"contactId": contact.ContactID}, "Message received", nil)
}

// GetContacts lists all contact messages (admin only).
func GetContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	contacts, err := store.GetAllContacts(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch contacts", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// ResolveContact marks a message resolved (admin only).
func ResolveContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contactID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ContactsCollection.UpdateOne(
		ctx,
		bson.M{"contactId": contactID},
		bson.M{"$set": bson.M{"status": models.ContactResolved, "updatedAt": time.Now()}},
	)
	if err != nil {
		http.Error(w, "Failed to update contact", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DeleteContact removes a message (admin only).
func DeleteContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contactID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ContactsCollection.DeleteOne(ctx, bson.M{"contactId": contactID})
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
