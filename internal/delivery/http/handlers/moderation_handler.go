package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/delivery/http/middleware"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	mappingdto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/mapping"
	mappingusecase "github.com/pricelink/supplier-mapping-service/internal/usecase/mapping"
)

type ModerationHandler struct {
	mappingUc mappingusecase.MappingUsecase
	ledgerUc  usecase.LedgerUsecase
	issueUc   usecase.IssueUsecase
}

func NewModerationHandler(
	mappingUc mappingusecase.MappingUsecase,
	ledgerUc usecase.LedgerUsecase,
	issueUc usecase.IssueUsecase,
) *ModerationHandler {
	return &ModerationHandler{
		mappingUc: mappingUc,
		ledgerUc:  ledgerUc,
		issueUc:   issueUc,
	}
}

// Pending returns the moderation queue: PENDING mappings that are still the
// latest for their group, oldest first.
func (h *ModerationHandler) Pending(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.mappingUc.PendingQueue()
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]httpdto.PendingMappingResponse, len(mappings))
	for i, mapping := range mappings {
		resp := httpdto.PendingMappingResponse{
			ID:                  mapping.ID,
			OwnerID:             mapping.OwnerID,
			PacketID:            mapping.PacketID,
			INNNorm:             mapping.INNNorm,
			StdSupplierRaw:      mapping.RawSupplier,
			Status:              string(mapping.Status),
			CanonicalSupplierID: mapping.CanonicalSupplierID,
			CreatedAt:           mapping.CreatedAt,
		}
		if mapping.CanonicalSupplier != nil {
			resp.CanonicalSupplier = mapping.CanonicalSupplier.Name
			resp.CanonicalINN = mapping.CanonicalSupplier.INN
		}
		out[i] = resp
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	mapping, err := h.mappingUc.Approve(
		chi.URLParam(r, "mappingID"),
		middleware.AdminFromContext(r.Context()),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httpdto.DecisionResponse{Status: string(mapping.Status)})
}

func (h *ModerationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var payload httpdto.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	mapping, err := h.mappingUc.Reject(&mappingdto.RejectInput{
		MappingID:       chi.URLParam(r, "mappingID"),
		DecidedBy:       middleware.AdminFromContext(r.Context()),
		ReasonCode:      payload.ReasonCode,
		CommentInternal: payload.CommentInternal,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, httpdto.DecisionResponse{
		Status:      string(mapping.Status),
		ReasonLabel: mapping.RejectReasonLabel,
	})
}

func (h *ModerationHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	events, err := h.ledgerUc.History(r.URL.Query().Get("q"), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]httpdto.ModerationEventResponse, len(events))
	for i, event := range events {
		out[i] = toModerationEventResponse(event)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ModerationHandler) Issues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issueUc.ListIssues()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]httpdto.IssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = toIssueResponse(issue)
	}
	writeJSON(w, http.StatusOK, out)
}

func toModerationEventResponse(event *domain.ModerationEvent) httpdto.ModerationEventResponse {
	return httpdto.ModerationEventResponse{
		ID:                    event.ID,
		OwnerID:               event.OwnerID,
		PacketID:              event.PacketID,
		SupplierGroupID:       event.GroupID,
		MappingID:             event.MappingID,
		Decision:              string(event.Decision),
		DecidedAt:             event.DecidedAt,
		DecidedBy:             event.DecidedBy,
		RejectReasonLabel:     event.RejectReasonLabel,
		RejectCommentInternal: event.RejectCommentInternal,
		StdSupplierRaw:        event.RawSupplier,
		INNNorm:               event.INNNorm,
		CanonicalSupplier:     event.CanonicalSupplier,
		CanonicalINN:          event.CanonicalINN,
		CanonicalCity:         event.CanonicalCity,
	}
}
