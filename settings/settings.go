// Package settings holds admin-panel state that lives in the key-value
// store rather than a shared collection: display settings and currency
// conversion rates.
package settings

import (
	"encoding/json"
	"net/http"

	"arone/globals"
	"arone/models"
	"arone/mq"
	"arone/rdx"
	"arone/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	settingsKey = "adminSettings"
	ratesKey    = "currencyRates"
)

// AdminSettings is the back-office display configuration.
type AdminSettings struct {
	SiteName       string `json:"siteName"`
	SupportEmail   string `json:"supportEmail"`
	SupportPhone   string `json:"supportPhone"`
	BaseCurrency   string `json:"baseCurrency"`
	BookingsPaused bool   `json:"bookingsPaused"`
}

func defaultSettings() AdminSettings {
	return AdminSettings{
		SiteName:     "Arone Tours",
		SupportEmail: "hello@arone.lk",
		BaseCurrency: "LKR",
	}
}

// CurrencyRates maps currency code to the LKR conversion rate.
type CurrencyRates map[string]float64

var kv blobKV = rdx.Store{}

type blobKV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw, err := kv.Get(settingsKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	settings := defaultSettings()
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Corrupt settings blob")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var settings AdminSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	data, err := json.Marshal(settings)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode settings")
		return
	}
	if err := kv.Set(settingsKey, string(data)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GetRates is public; the booking pages convert prices client-side.
func GetRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw, err := kv.Get(ratesKey)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load rates")
		return
	}

	rates := CurrencyRates{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &rates); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Corrupt rates blob")
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"rates": rates})
}

// UpdateRates stores the new rate table and broadcasts rates-updated so any
// listener (price caches, open dashboards) can refresh.
func UpdateRates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rates CurrencyRates
	if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	for code, rate := range rates {
		if code == "" || rate <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Rates must be positive")
			return
		}
	}

	data, err := json.Marshal(rates)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode rates")
		return
	}
	if err := kv.Set(ratesKey, string(data)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save rates")
		return
	}

	go mq.Emit(globals.Ctx, "rates-updated", models.Index{EntityType: "rates", Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
