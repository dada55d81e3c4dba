package inventory_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"medassist/internal/entities"
	"medassist/internal/handlers/rest/dto"
	"medassist/internal/pkg/middlewares/auth"
	"medassist/internal/service/inventory"
	"medassist/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var request dto.InventoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := entities.InventoryItem{
		MedicineID:        request.MedicineID,
		BatchNo:           request.BatchNo,
		ExpiryDate:        request.ExpiryDate,
		QuantityAvailable: request.QuantityAvailable,
		MRP:               request.MRP,
		SellingPrice:      request.SellingPrice,
	}

	created, err := h.service.Add(r.Context(), identity.UserID, item)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrMissingRequiredFields),
			errors.Is(err, inventory.ErrInvalidItemID),
			errors.Is(err, inventory.ErrInvalidQuantity),
			errors.Is(err, inventory.ErrInvalidPrice),
			errors.Is(err, inventory.ErrInvalidExpiryDate):
			h.writeError(w, http.StatusBadRequest, "invalid inventory item")
		case errors.Is(err, inventory.ErrPharmacyNotFound):
			h.writeError(w, http.StatusNotFound, "pharmacy not found")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteData(w, http.StatusCreated, dto.NewInventoryItem(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	err := dto.WriteMessage(w, code, false, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
