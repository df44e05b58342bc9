package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"sredemo/internal/core/domain"
)

// Use a single instance of Validate, it caches struct info.
var validate = validator.New()

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type TodoHandler struct {
	Repo domain.TodoRepository
}

func NewTodoHandler(repo domain.TodoRepository) *TodoHandler {
	return &TodoHandler{Repo: repo}
}

// List handles GET /todos
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Repo.List(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todos": todos})
}

// Create handles POST /todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		HandleError(w, &domain.ValidationError{Reason: "invalid JSON payload"})
		return
	}

	if err := validate.Struct(req); err != nil {
		HandleError(w, &domain.ValidationError{Reason: "title is required"})
		return
	}

	todo, err := h.Repo.Create(r.Context(), req.Title, req.Description, req.Completed)
	if err != nil {
		HandleError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"todo": todo})
}

// Get handles GET /todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	todo, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		HandleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todo": todo})
}

// Update handles PUT /todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	var patch domain.TodoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		HandleError(w, &domain.ValidationError{Reason: "invalid or empty JSON payload"})
		return
	}
	if patch.Empty() {
		HandleError(w, domain.ErrNoFields)
		return
	}

	todo, err := h.Repo.Update(r.Context(), id, patch)
	if err != nil {
		HandleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todo": todo})
}

// Delete handles DELETE /todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		HandleError(w, err)
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		HandleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "todo deleted"})
}

func todoID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, &domain.ValidationError{Reason: "invalid todo id"}
	}
	return id, nil
}
