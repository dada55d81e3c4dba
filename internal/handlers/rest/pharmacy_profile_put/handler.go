package pharmacy_profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"medassist/internal/entities"
	"medassist/internal/handlers/rest/dto"
	"medassist/internal/pkg/middlewares/auth"
	"medassist/internal/service/pharmacy"
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

	var request dto.PharmacyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modify := entities.PharmacyModify{
		Name:         request.Name,
		Address:      request.Address,
		OpeningHours: request.OpeningHours,
		ContactPhone: request.ContactPhone,
	}

	updated, err := h.service.UpdateProfile(r.Context(), identity.UserID, modify)
	if err != nil {
		switch {
		case errors.Is(err, pharmacy.ErrMissingRequiredFields),
			errors.Is(err, pharmacy.ErrInvalidName),
			errors.Is(err, pharmacy.ErrInvalidPhone):
			h.writeError(w, http.StatusBadRequest, "invalid profile update")
		case errors.Is(err, pharmacy.ErrUserNotFound):
			h.writeError(w, http.StatusNotFound, "pharmacist not found")
		case errors.Is(err, pharmacy.ErrPharmacyNotFound):
			h.writeError(w, http.StatusNotFound, "pharmacy not found")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteData(w, http.StatusOK, dto.NewPharmacy(updated))
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
