package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/response"
)

// Handler handles HTTP requests for balance and settlement reports
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetSummary)
	r.Get("/balances", h.GetBalances)

	return r
}

// GetBalances handles GET /settlements/balances
// @Summary      Get balances
// @Description  Get every person's paid, owed and net balance figures
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]Balance}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements/balances [get]
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.GetBalances(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// GetSummary handles GET /settlements
// @Summary      Get settlement summary
// @Description  Get all balances plus the transfers that settle every debt
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summary)
}

// writeError maps inconsistent split data to a client error; everything else
// is a server fault
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var consistencyErr *split.ConsistencyError
	if errors.As(err, &consistencyErr) {
		response.BadRequest(w, consistencyErr.Error())
		return
	}
	response.InternalError(w, "Failed to compute settlement")
}
