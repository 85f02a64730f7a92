package offers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"arone/models"
	"arone/rdx"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
)

var svc = NewService(rdx.Store{})

func ListOffers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	offers, err := svc.List()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load offers")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

func CreateOffer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Title      string `json:"title"`
		Discount   string `json:"discount"`
		ValidUntil string `json:"validUntil"`
		Code       string `json:"code"`
		Active     bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == "" || input.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and code are required")
		return
	}

	offer, err := svc.Create(models.Offer{
		Title:      input.Title,
		Discount:   input.Discount,
		ValidUntil: input.ValidUntil,
		Code:       input.Code,
		Active:     input.Active,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save offer")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"offer": offer})
}

func ToggleOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offer id")
		return
	}

	found, err := svc.Toggle(id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update offer")
		return
	}
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Offer not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func DeleteOffer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid offer id")
		return
	}

	if err := svc.Delete(id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete offer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
