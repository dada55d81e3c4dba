package deliveries_get

import (
	"errors"
	"net/http"
	"strconv"

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

	query := r.URL.Query()

	page, ok := dto.PageFromQuery(query)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	var status *entities.DeliveryStatusType
	if raw := query.Get("status"); raw != "" {
		statusValue := entities.DeliveryStatusType(raw)
		status = &statusValue
	}

	var available bool
	if raw := query.Get("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid available flag")
			return
		}
		available = parsed
	}

	deliveries, pagination, err := h.service.List(r.Context(), identity.UserID, status, available, page)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidPage),
			errors.Is(err, delivery.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, "invalid query parameters")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteData(w, http.StatusOK, dto.NewDeliveryList(deliveries, pagination))
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
