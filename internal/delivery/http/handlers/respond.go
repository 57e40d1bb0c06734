package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("failed to encode response", "error", err.Error())
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Cross-tenant
// group access surfaces as GROUP_NOT_FOUND so group existence never leaks
// outside the token's scope.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrTokenInvalid):
		status, code = http.StatusUnauthorized, "TOKEN_INVALID"
	case errors.Is(err, domain.ErrTokenExpired):
		status, code = http.StatusUnauthorized, "TOKEN_EXPIRED"
	case errors.Is(err, domain.ErrGroupNotFound):
		status, code = http.StatusNotFound, "GROUP_NOT_FOUND"
	case errors.Is(err, domain.ErrSupplierNotFound):
		status, code = http.StatusNotFound, "SUPPLIER_NOT_FOUND"
	case errors.Is(err, domain.ErrNotPending):
		status, code = http.StatusConflict, "NOT_PENDING"
	case errors.Is(err, domain.ErrStaleMapping):
		status, code = http.StatusConflict, "STALE_MAPPING"
	case errors.Is(err, domain.ErrReasonRequired):
		status, code = http.StatusBadRequest, "REASON_REQUIRED"
	case errors.Is(err, domain.ErrInvalidSupplierINN):
		status, code = http.StatusBadRequest, "INVALID_INN"
	default:
		slog.Error("internal error", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, httpdto.ErrorResponse{
			Error:   "INTERNAL",
			Message: "internal error",
		})
		return
	}
	writeJSON(w, status, httpdto.ErrorResponse{Error: code, Message: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, httpdto.ErrorResponse{Error: "BAD_REQUEST", Message: message})
}
