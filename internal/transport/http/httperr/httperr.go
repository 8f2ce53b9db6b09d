// Package httperr writes error responses in the API's wire format.
package httperr

import (
	"encoding/json"
	"net/http"
)

type response struct {
	Detail string `json:"detail"`
}

// Write sends a JSON error body of the form {"detail": "<message>"}.
func Write(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Detail: detail})
}
