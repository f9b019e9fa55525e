package recurring

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/response"
)

// Handler handles HTTP requests for recurring expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new recurring expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for recurring expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /recurring
// @Summary      Create a recurring expense
// @Description  Create a template that inserts an equal-split expense on a DAILY, WEEKLY or MONTHLY schedule
// @Tags         recurring
// @Accept       json
// @Produce      json
// @Param        request body CreateRecurringRequest true "Recurring expense request"
// @Success      201 {object} response.APIResponse{data=RecurringResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /recurring [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRecurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	template, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create recurring expense")
		return
	}

	response.JSON(w, http.StatusCreated, template.ToResponse())
}

// List handles GET /recurring
// @Summary      List recurring expenses
// @Tags         recurring
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]RecurringResponse}
// @Router       /recurring [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list recurring expenses")
		return
	}

	responses := make([]*RecurringResponse, len(templates))
	for i, t := range templates {
		responses[i] = t.ToResponse()
	}

	response.JSON(w, http.StatusOK, responses)
}

// Delete handles DELETE /recurring/{id}
// @Summary      Delete a recurring expense
// @Tags         recurring
// @Produce      json
// @Param        id path int true "Recurring expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /recurring/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid recurring expense ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete recurring expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Recurring expense deleted successfully"})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrDescriptionRequired) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrPayerRequired) ||
		errors.Is(err, ErrNoParticipants) ||
		errors.Is(err, ErrInvalidFrequency) ||
		errors.Is(err, ErrInvalidStartDate)
}
