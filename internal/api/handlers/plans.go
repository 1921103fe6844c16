package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patrimonio/wealth-backend/internal/api/request"
	"github.com/patrimonio/wealth-backend/internal/api/response"
	"github.com/patrimonio/wealth-backend/internal/apperrors"
	"github.com/patrimonio/wealth-backend/internal/service"
)

// PlanHandler handles HTTP requests for plan snapshot endpoints.
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new PlanHandler with the provided service dependency.
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// ListPlans handles GET requests to retrieve all plan snapshots,
// newest first.
//
// Endpoint: GET /api/plans
// Response: 200 OK with array of PlanSnapshot
func (h *PlanHandler) ListPlans(w http.ResponseWriter, _ *http.Request) {
	plans, err := h.planService.ListPlanSnapshots()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve plans", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, plans)
}

// GetPlan handles GET requests to retrieve one plan snapshot.
//
// Endpoint: GET /api/plans/{uuid}
// Response: 200 OK with PlanSnapshot
// Error: 404 Not Found if the snapshot does not exist
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	plan, err := h.planService.GetPlanSnapshot(planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, plan)
}

// CreatePlan handles POST requests to capture the current forecast as
// a named snapshot. The projections and future ledger freeze at
// creation time.
//
// Endpoint: POST /api/plans
// Request Body: CreatePlanSnapshotRequest
// Response: 201 Created with PlanSnapshot
// Error: 400 Bad Request if the request body is invalid
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePlanSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	plan, err := h.planService.CreatePlanSnapshot(req.Name, req.Notes)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, plan)
}

// UpdatePlan handles PUT requests to edit a snapshot's name and notes.
// Every other field is immutable after creation.
//
// Endpoint: PUT /api/plans/{uuid}
// Request Body: UpdatePlanSnapshotRequest
// Response: 200 OK with updated PlanSnapshot
// Error: 404 Not Found if the snapshot does not exist
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePlanSnapshotRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	plan, err := h.planService.UpdatePlanSnapshot(planID, req.Name, req.Notes)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, plan)
}

// DeletePlan handles DELETE requests to remove a plan snapshot.
//
// Endpoint: DELETE /api/plans/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the snapshot does not exist
func (h *PlanHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	if err := h.planService.DeletePlanSnapshot(planID); err != nil {
		if errors.Is(err, apperrors.ErrPlanSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ComparePlan handles GET requests to diff a stored snapshot against
// the live forecast.
//
// Endpoint: GET /api/plans/{uuid}/comparison
// Response: 200 OK with PlanComparison
// Error: 404 Not Found if the snapshot does not exist
func (h *PlanHandler) ComparePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "uuid")

	comparison, err := h.planService.ComparePlan(planID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlanSnapshotNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPlanSnapshotNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to compare plan", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, comparison)
}
