package handlers

import (
	"net/http"
	"time"

	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/domain"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
)

type AnalyticsHandler struct {
	analyticsUc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUc: analyticsUc}
}

// ApprovedMappings exports approved links for downstream pricing, optionally
// bounded by from_date/to_date (RFC 3339 or YYYY-MM-DD).
func (h *AnalyticsHandler) ApprovedMappings(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimeParam(r.URL.Query().Get("from_date"))
	if err != nil {
		writeBadRequest(w, "invalid from_date parameter")
		return
	}
	to, err := parseTimeParam(r.URL.Query().Get("to_date"))
	if err != nil {
		writeBadRequest(w, "invalid to_date parameter")
		return
	}

	mappings, err := h.analyticsUc.ApprovedMappings(from, to)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponses(mappings))
}

func (h *AnalyticsHandler) ApprovedByPacket(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	packetID := r.URL.Query().Get("packetId")
	if ownerID == "" || packetID == "" {
		writeBadRequest(w, "ownerId and packetId are required")
		return
	}

	mappings, err := h.analyticsUc.ApprovedByPacket(ownerID, packetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponses(mappings))
}

func toAnalyticsResponses(mappings []*domain.SupplierMapping) []httpdto.AnalyticsMappingResponse {
	out := make([]httpdto.AnalyticsMappingResponse, len(mappings))
	for i, mapping := range mappings {
		resp := httpdto.AnalyticsMappingResponse{
			OwnerID:             mapping.OwnerID,
			PacketID:            mapping.PacketID,
			INN:                 mapping.INNNorm,
			StdSupplierRaw:      mapping.RawSupplier,
			CanonicalSupplierID: mapping.CanonicalSupplierID,
			ApprovedAt:          mapping.DecidedAt,
		}
		if mapping.CanonicalSupplier != nil {
			resp.CanonicalSupplier = mapping.CanonicalSupplier.Name
		}
		out[i] = resp
	}
	return out
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
