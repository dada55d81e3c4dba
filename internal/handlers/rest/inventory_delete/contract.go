//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_delete_test
package inventory_delete

import (
	"context"

	"medassist/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Delete(ctx context.Context, pharmacistUserID, id string) error
}
