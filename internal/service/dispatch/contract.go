//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"medassist/pkg/logger"
)

type DeliveryRepository interface {
	CreateAssigned(ctx context.Context, orderID string, now time.Time) (bool, error)
	FailByOrderID(ctx context.Context, orderID string) (bool, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
