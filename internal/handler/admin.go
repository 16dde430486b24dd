package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/authdesk/authdesk-go/internal/model"
	"github.com/authdesk/authdesk-go/internal/repository"
	"github.com/authdesk/authdesk-go/internal/service"
)

// AdminHandler handles HTTP requests for the account administration surface.
type AdminHandler struct {
	service  *service.AdminService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{
		service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// HandleListAccounts handles GET /api/v1/admin/accounts requests.
func (h *AdminHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

// HandleSetStatus handles PATCH /api/v1/admin/accounts/{account_id}/status requests.
func (h *AdminHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request: "+err.Error()))
		return
	}

	if err := h.service.SetStatus(r.Context(), accountID, req.Status); err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// HandleUpdateAccount handles PUT /api/v1/admin/accounts/{account_id} requests.
func (h *AdminHandler) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request: "+err.Error()))
		return
	}

	if err := h.service.EditProfile(r.Context(), accountID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrIdentityTaken):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, repository.ErrAccountNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case isInputError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "account updated successfully"})
}

// HandleDeleteAccount handles DELETE /api/v1/admin/accounts/{account_id} requests.
func (h *AdminHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteAccount(r.Context(), accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

func accountIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid account id"))
		return 0, false
	}
	return id, true
}
