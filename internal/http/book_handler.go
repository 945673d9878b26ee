package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/httpx"
)

type BookHandler struct {
	svc *catalog.Service
}

func NewBookHandler(svc *catalog.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

// Collection dispatches /books by method.
func (h *BookHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// Item dispatches /books/{id} by method.
func (h *BookHandler) Item(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.Get(w, r, id)
	case http.MethodPatch:
		h.UpdateAuthor(w, r, id)
	case http.MethodDelete:
		h.Delete(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PATCH, DELETE")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// crude path param extraction with net/http's ServeMux: /books/{id}
func bookID(r *http.Request) (string, bool) {
	const prefix = "/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(httpx.IdentityFrom(r), auth.Authenticated); err != nil {
		writeError(w, r, err)
		return
	}

	params := catalog.ListParams{
		Search: r.URL.Query().Get("search"),
	}
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	params.Skip = skip
	params.Limit = limit

	books, err := h.svc.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	meta := map[string]interface{}{
		"skip":  skip,
		"limit": limit,
	}
	httpx.JSONSuccess(w, books, meta)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := auth.Require(httpx.IdentityFrom(r), auth.Administrator); err != nil {
		writeError(w, r, err)
		return
	}

	var in catalog.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return
	}

	book, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, book)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.Require(httpx.IdentityFrom(r), auth.Authenticated); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, book, nil)
}

func (h *BookHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.Require(httpx.IdentityFrom(r), auth.Administrator); err != nil {
		writeError(w, r, err)
		return
	}

	var body struct {
		Author string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return
	}
	if body.Author == "" {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book input",
			[]httpx.ErrorDetail{{Field: "author", Message: "author is required"}})
		return
	}

	book, err := h.svc.UpdateAuthor(r.Context(), id, body.Author)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, book, nil)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := auth.Require(httpx.IdentityFrom(r), auth.Administrator); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
