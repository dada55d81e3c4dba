//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_post_test
package inventory_post

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
	Add(ctx context.Context, pharmacistUserID string, item entities.InventoryItem) (*entities.InventoryItem, error)
}
