package http

import (
	"encoding/json"
	"net/http"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/account"
	"github.com/cashbookhq/cashbook-backend-go/internal/handler/http/middleware"
	"github.com/cashbookhq/cashbook-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type accountHandlerImpl struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) AccountHandler {
	return &accountHandlerImpl{accountService: accountService}
}

func (h *accountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req account.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.accountService.Create(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created", created)
}

func (h *accountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	accounts, err := h.accountService.List(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

func (h *accountHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.CompanyID(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Account ID is required", nil)
		return
	}

	result, err := h.accountService.Get(r.Context(), companyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
