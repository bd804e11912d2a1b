package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/payroll"
	"github.com/cashbookhq/cashbook-backend-go/internal/handler/http/middleware"
	"github.com/cashbookhq/cashbook-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
	CommitBatch(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	req := payroll.PreviewRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	rows, err := h.payrollService.ComputePreview(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *payrollHandlerImpl) Commit(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req payroll.CommitPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	record, err := h.payrollService.Commit(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll saved", record)
}

func (h *payrollHandlerImpl) CommitBatch(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req payroll.BatchCommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CommitBatch(r.Context(), companyID, req)
	if err != nil {
		var partial *payroll.PartialCommitError
		if errors.As(err, &partial) {
			// Partial failure is not a transport error; every outcome is in the
			// payload so the caller can report exactly which employees failed.
			response.MultiStatus(w, partial.Error(), result)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll batch saved", result)
}

func (h *payrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	records, err := h.payrollService.History(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
