package handlers

import (
	"encoding/json"
	"net/http"

	httpdto "github.com/pricelink/supplier-mapping-service/internal/delivery/http/dto"
	"github.com/pricelink/supplier-mapping-service/internal/usecase"
	pricedto "github.com/pricelink/supplier-mapping-service/internal/usecase/dto/price"
)

type ImportHandler struct {
	importUc usecase.ImportUsecase
}

func NewImportHandler(importUc usecase.ImportUsecase) *ImportHandler {
	return &ImportHandler{importUc: importUc}
}

func (h *ImportHandler) ImportPriceItems(w http.ResponseWriter, r *http.Request) {
	var payload []httpdto.PriceItemImportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rows := make([]pricedto.PriceItemInput, len(payload))
	for i, item := range payload {
		rows[i] = pricedto.PriceItemInput{
			OwnerID:     item.OwnerID,
			PacketID:    item.PacketID,
			RawINN:      item.INN,
			RawSupplier: item.StdSupplier,
			ItemID:      item.ItemID,
		}
	}

	result, err := h.importUc.ImportItems(rows)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, httpdto.ImportResponse{
		ItemsIngested: result.ItemsIngested,
		GroupsCreated: result.GroupsCreated,
		GroupsUpdated: result.GroupsUpdated,
	})
}
