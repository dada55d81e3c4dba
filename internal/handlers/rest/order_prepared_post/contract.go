//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_prepared_post_test
package order_prepared_post

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
	MarkPrepared(ctx context.Context, id, pharmacistUserID string) (*entities.Order, error)
}
