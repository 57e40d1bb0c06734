package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
)

// SupplierHandler is the admin-side registry CRUD.
type SupplierHandler struct {
	supplierUc usecase.SupplierUsecase
}

func NewSupplierHandler(supplierUc usecase.SupplierUsecase) *SupplierHandler {
	return &SupplierHandler{supplierUc: supplierUc}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierUc.SearchSuppliers(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponses(suppliers))
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	supplier, err := h.supplierUc.CreateSupplier(toSupplierInput(payload))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	supplier, err := h.supplierUc.UpdateSupplier(chi.URLParam(r, "supplierID"), toSupplierInput(payload))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.supplierUc.DeleteSupplier(chi.URLParam(r, "supplierID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httpdto.StatusResponse{Status: "deleted"})
}

func toSupplierInput(payload httpdto.SupplierRequest) *usecase.SupplierInput {
	return &usecase.SupplierInput{
		Name:    payload.Supplier,
		INN:     payload.INN,
		KPP:     payload.KPP,
		Country: payload.Country,
		City:    payload.City,
		Address: payload.Address,
		URL:     payload.URL,
		Branch:  payload.Branch,
	}
}
