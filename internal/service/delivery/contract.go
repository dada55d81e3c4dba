//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"medassist/internal/entities"
	"medassist/pkg/logger"
)

type Repository interface {
	GetByDriver(ctx context.Context, driverID string, status *entities.DeliveryStatusType, page entities.PageRequest) ([]entities.Delivery, int64, error)
	GetAvailable(ctx context.Context, page entities.PageRequest) ([]entities.Delivery, int64, error)
	GetByIDForDriver(ctx context.Context, id, driverID string) (*entities.Delivery, error)

	Claim(ctx context.Context, id, driverID string, now time.Time) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, id, driverID string, upd entities.DeliveryStatusUpdate, now time.Time) (*entities.Delivery, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	MirrorStatus(ctx context.Context, id string, status entities.OrderStatusType, now time.Time) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
