//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_get_test
package inventory_get

import (
	"context"

	"medassist/internal/entities"
	"medassist/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	List(ctx context.Context, pharmacistUserID string, page entities.PageRequest) ([]entities.InventoryItem, entities.Pagination, error)
}
