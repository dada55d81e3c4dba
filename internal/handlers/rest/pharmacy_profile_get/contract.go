//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_profile_get_test
package pharmacy_profile_get

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
	GetProfile(ctx context.Context, userID string) (*entities.PharmacistProfile, error)
}
