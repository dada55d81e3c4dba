package orders_get

import (
	"errors"
	"net/http"

	"medassist/internal/entities"
	"medassist/internal/handlers/rest/dto"
	"medassist/internal/pkg/middlewares/auth"
	"medassist/internal/service/order"
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

	var status *entities.OrderStatusType
	if raw := query.Get("status"); raw != "" {
		statusValue := entities.OrderStatusType(raw)
		status = &statusValue
	}

	orders, pagination, err := h.service.List(r.Context(), identity.UserID, status, page)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidPage),
			errors.Is(err, order.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, "invalid query parameters")
		case errors.Is(err, order.ErrPharmacyNotFound):
			h.writeError(w, http.StatusNotFound, "pharmacy not found")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteData(w, http.StatusOK, dto.NewOrderList(orders, pagination))
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
