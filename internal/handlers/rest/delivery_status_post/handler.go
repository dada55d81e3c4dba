package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"medassist/internal/entities"
	"medassist/internal/handlers/rest/dto"
	"medassist/internal/pkg/middlewares/auth"
	"medassist/internal/service/delivery"
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

	id := mux.Vars(r)["id"]

	var request dto.DeliveryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Координаты принимаются только парой.
	if (request.Lat == nil) != (request.Lon == nil) {
		h.writeError(w, http.StatusBadRequest, "lat and lon must be provided together")
		return
	}

	upd := entities.DeliveryStatusUpdate{
		Status: entities.DeliveryStatusType(request.Status),
		Notes:  request.Notes,
	}
	if request.Lat != nil && request.Lon != nil {
		upd.Location = &entities.Location{
			Lat: *request.Lat,
			Lon: *request.Lon,
		}
	}

	deliveryEntity, err := h.service.UpdateStatus(r.Context(), id, identity.UserID, upd)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrInvalidLocation):
			h.writeError(w, http.StatusBadRequest, "invalid status update")
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			h.writeError(w, http.StatusNotFound, "delivery not found")
		case errors.Is(err, delivery.ErrStatusConflict):
			h.writeError(w, http.StatusConflict, "status transition not allowed")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteData(w, http.StatusOK, dto.NewDelivery(deliveryEntity))
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
