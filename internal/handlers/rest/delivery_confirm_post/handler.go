package delivery_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	var request dto.ConfirmDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deliveryEntity, err := h.service.ConfirmDelivery(r.Context(), id, identity.UserID, request.OTP)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidOTPFormat):
			h.writeError(w, http.StatusBadRequest, "invalid confirmation request")
		case errors.Is(err, delivery.ErrOTPMismatch):
			h.writeError(w, http.StatusBadRequest, "otp does not match")
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, delivery.ErrOrderNotFound):
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
