package person

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/response"
)

// Handler handles HTTP requests for person operations
type Handler struct {
	service *Service
}

// NewHandler creates a new person handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for person endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)

	return r
}

// Create handles POST /people
// @Summary      Create a person
// @Description  Create a person by name; an existing name returns the existing person
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        request body CreatePersonRequest true "Person creation request"
// @Success      201 {object} response.APIResponse{data=PersonResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /people [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	person, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create person")
		return
	}

	response.JSON(w, http.StatusCreated, person.ToResponse())
}

// GetByID handles GET /people/{id}
// @Summary      Get person by ID
// @Tags         people
// @Produce      json
// @Param        id path int true "Person ID"
// @Success      200 {object} response.APIResponse{data=PersonResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /people/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid person ID")
		return
	}

	person, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPersonNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get person")
		return
	}

	response.JSON(w, http.StatusOK, person.ToResponse())
}

// List handles GET /people
// @Summary      List people
// @Tags         people
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]PersonResponse}
// @Router       /people [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	people, total, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list people")
		return
	}

	personResponses := make([]*PersonResponse, len(people))
	for i, p := range people {
		personResponses[i] = p.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, personResponses, meta)
}
