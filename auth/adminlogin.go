package auth

import (
	"encoding/json"
	"net/http"

	"arone/access"
)

// adminLoginHandler signs into the admin portal. The admin email is checked
// twice: before credential verification, so a valid password for a
// non-admin account is never confirmed or denied, and again on the
// authenticated principal before tokens are issued.
func adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !access.IsAdminUser(input.Email) {
		http.Error(w, "Not authorized for the admin portal", http.StatusForbidden)
		return
	}

	user, err := authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	// Re-check on the stored principal in case the account email differs
	// from the submitted one in the database.
	if !access.IsCurrentUserAdmin(user) {
		http.Error(w, "Not authorized for the admin portal", http.StatusForbidden)
		return
	}

	issueTokens(w, user)
}
