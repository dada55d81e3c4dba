//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"
	"time"

	"medassist/internal/entities"
)

type UserRepository interface {
	GetDriver(ctx context.Context, id string) (*entities.User, error)
}

type DeliveryRepository interface {
	GetStatsByDriver(ctx context.Context, driverID string) (*entities.DriverStats, error)
}

type LocationRepository interface {
	Upsert(ctx context.Context, driverID string, loc entities.Location, now time.Time) error
}
