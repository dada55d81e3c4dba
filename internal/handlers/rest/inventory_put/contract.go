//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_put_test
package inventory_put

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
	Update(ctx context.Context, pharmacistUserID, id string, modify entities.InventoryItemModify) (*entities.InventoryItem, error)
}
