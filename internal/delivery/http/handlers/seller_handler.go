package handlers

import (
	"encoding/json"
	"net/http"

	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	mappingdto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/mapping"
	mappingusecase "github.com/pricelink/supplier-mapping-service/internal/usecase/mapping"
)

type SellerHandler struct {
	mappingUc  mappingusecase.MappingUsecase
	supplierUc usecase.SupplierUsecase
	issueUc    usecase.IssueUsecase
}

func NewSellerHandler(
	mappingUc mappingusecase.MappingUsecase,
	supplierUc usecase.SupplierUsecase,
	issueUc usecase.IssueUsecase,
) *SellerHandler {
	return &SellerHandler{
		mappingUc:  mappingUc,
		supplierUc: supplierUc,
		issueUc:    issueUc,
	}
}

// Groups lists every supplier group in the token's scope with its derived
// status. Internal moderation comments are never part of this read model.
func (h *SellerHandler) Groups(w http.ResponseWriter, r *http.Request) {
	views, err := h.mappingUc.SellerGroups(r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]httpdto.GroupResponse, len(views))
	for i, view := range views {
		out[i] = httpdto.GroupResponse{
			ID:                  view.Group.ID,
			OwnerID:             view.Group.OwnerID,
			PacketID:            view.Group.PacketID,
			INNNorm:             view.Group.INNNorm,
			INNInvalid:          view.Group.INNInvalid,
			StdSupplierRaw:      view.Group.RawSupplier,
			ItemsCount:          view.Group.ItemsCount,
			Status:              string(view.Status),
			CanonicalSupplier:   view.CanonicalSupplier,
			CanonicalSupplierID: view.CanonicalSupplierID,
			LatestDecisionAt:    view.LatestDecisionAt,
			RejectReasonLabel:   view.RejectReasonLabel,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *SellerHandler) SearchSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.supplierUc.SearchSuppliers(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSupplierResponses(suppliers))
}

func (h *SellerHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.MappingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	mapping, err := h.mappingUc.CreateMapping(&mappingdto.CreateMappingInput{
		Token:               payload.Token,
		GroupID:             payload.GroupID,
		CanonicalSupplierID: payload.CanonicalSupplierID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, httpdto.MappingCreatedResponse{
		Status:    string(mapping.Status),
		MappingID: mapping.ID,
	})
}

func (h *SellerHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.IssueCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	issue, err := h.issueUc.Report(payload.Token, payload.GroupID, payload.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(issue))
}

func toSupplierResponses(suppliers []*domain.Supplier) []httpdto.SupplierResponse {
	out := make([]httpdto.SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		out[i] = toSupplierResponse(supplier)
	}
	return out
}

func toSupplierResponse(supplier *domain.Supplier) httpdto.SupplierResponse {
	return httpdto.SupplierResponse{
		ID:        supplier.ID,
		Supplier:  supplier.Name,
		INN:       supplier.INN,
		KPP:       supplier.KPP,
		Country:   supplier.Country,
		City:      supplier.City,
		Address:   supplier.Address,
		URL:       supplier.URL,
		Branch:    supplier.Branch,
		CreatedAt: supplier.CreatedAt,
	}
}

func toIssueResponse(issue *domain.Issue) httpdto.IssueResponse {
	return httpdto.IssueResponse{
		ID:          issue.ID,
		OwnerID:     issue.OwnerID,
		PacketID:    issue.PacketID,
		GroupID:     issue.GroupID,
		INNNorm:     issue.INNNorm,
		StdSupplier: issue.RawSupplier,
		Comment:     issue.Comment,
		CreatedAt:   issue.CreatedAt,
	}
}
