package inventory_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	id := mux.Vars(r)["id"]

	err := h.service.Delete(r.Context(), identity.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidItemID):
			h.writeError(w, http.StatusBadRequest, "invalid item id")
		case errors.Is(err, inventory.ErrItemNotFound):
			h.writeError(w, http.StatusNotFound, "inventory item not found")
		case errors.Is(err, inventory.ErrPharmacyNotFound):
			h.writeError(w, http.StatusNotFound, "pharmacy not found")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	err = dto.WriteMessage(w, http.StatusOK, true, "inventory item deleted")
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
