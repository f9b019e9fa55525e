package report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/response"
)

// Handler handles HTTP requests for reporting endpoints
type Handler struct {
	service *Service
}

// NewHandler creates a new report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for report endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/categories", h.Categories)
	r.Get("/monthly", h.Monthly)

	return r
}

// Categories handles GET /reports/categories
// @Summary      Spend by category
// @Description  Total and count of expenses grouped by category, optionally within a date window
// @Tags         reports
// @Produce      json
// @Param        from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param        to query string false "Window end (YYYY-MM-DD, exclusive)"
// @Success      200 {object} response.APIResponse{data=[]CategoryTotal}
// @Failure      400 {object} response.APIResponse
// @Router       /reports/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(w, r, "to")
	if !ok {
		return
	}

	totals, err := h.service.CategoryReport(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidDateRange) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to build category report")
		return
	}

	response.JSON(w, http.StatusOK, totals)
}

// Monthly handles GET /reports/monthly
// @Summary      Spend by month
// @Description  Total and count of expenses grouped by calendar month for a year
// @Tags         reports
// @Produce      json
// @Param        year query int false "Year (defaults to the current year)"
// @Success      200 {object} response.APIResponse{data=[]MonthlyTotal}
// @Router       /reports/monthly [get]
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	var year int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = parsed
	}

	totals, err := h.service.MonthlyReport(r.Context(), year)
	if err != nil {
		response.InternalError(w, "Failed to build monthly report")
		return
	}

	response.JSON(w, http.StatusOK, totals)
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. A false return
// means the response has already been written.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(w, "Invalid "+name+" date, expected YYYY-MM-DD")
		return nil, false
	}
	return &parsed, true
}
