package http

import (
	"encoding/json"
	"net/http"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/httpx"
)

type AuthHandler struct {
	directory *auth.Directory
}

func NewAuthHandler(directory *auth.Directory) *AuthHandler {
	return &AuthHandler{directory: directory}
}

// Login exchanges a username/password pair for the identity's fixed
// bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return
	}

	token, err := h.directory.Authenticate(body.Username, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, map[string]string{"token": token}, nil)
}
