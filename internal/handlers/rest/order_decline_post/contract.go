//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_decline_post_test
package order_decline_post

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
	Decline(ctx context.Context, id, pharmacistUserID string, reason *string) (*entities.Order, error)
}
