package handlers

import (
	"net/http"
	"time"

	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for the dashboard summary,
// forecasts, and value history.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	forecastService  *service.ForecastService
	snapshotService  *service.SnapshotService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependencies.
func NewPortfolioHandler(
	portfolioService *service.PortfolioService,
	forecastService *service.ForecastService,
	snapshotService *service.SnapshotService,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		forecastService:  forecastService,
		snapshotService:  snapshotService,
	}
}

// Summary handles GET requests for the dashboard summary: per-asset
// figures, category aggregates, and portfolio totals in the display
// currency.
//
// Endpoint: GET /api/portfolio/summary
// Response: 200 OK with PortfolioSummary
// Error: 500 Internal Server Error if valuation fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.portfolioService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Forecast handles GET requests for portfolio projections at the
// standard horizons, plus an optional custom target date.
//
// Endpoint: GET /api/portfolio/forecast?date=2027-01-01
// Response: 200 OK with Forecast
// Error: 400 Bad Request if the date is malformed
func (h *PortfolioHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var customDate *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := time.Parse(repository.DateFormat, raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		customDate = &d
	}

	forecast, err := h.forecastService.GetForecast(customDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to compute forecast", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, forecast)
}

// History handles GET requests for stored portfolio snapshots in
// chronological order.
//
// Endpoint: GET /api/portfolio/history?startDate=...&endDate=...
// Response: 200 OK with array of PortfolioSnapshot
// Error: 400 Bad Request if the date range is malformed
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	start, end, err := validation.ValidateDateRange(r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	snapshots, err := h.snapshotService.GetHistory(start, end)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve history", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshots)
}

// CaptureSnapshot handles POST requests to capture today's portfolio
// snapshot immediately, outside the scheduled run.
//
// Endpoint: POST /api/portfolio/snapshot
// Response: 201 Created with PortfolioSnapshot
// Error: 500 Internal Server Error if the capture fails
func (h *PortfolioHandler) CaptureSnapshot(w http.ResponseWriter, _ *http.Request) {
	snapshot, err := h.snapshotService.CaptureSnapshot()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to capture snapshot", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshot)
}
