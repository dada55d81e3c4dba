package dispatch

import (
	"context"
	"fmt"
	"time"

	"medassist/internal/entities"
	"medassist/internal/repository"
	"medassist/pkg/logger"
)

// Dispatch реагирует на смену статуса заказа: готовый заказ получает
// незанятую доставку, отмененный — проваливает незавершенную.
type Dispatch struct {
	deliveryRepository DeliveryRepository
	log                serviceLogger
}

func New(deliveryRepository DeliveryRepository, log serviceLogger) *Dispatch {
	return &Dispatch{
		deliveryRepository: deliveryRepository,
		log:                log,
	}
}

func (s *Dispatch) OrderStatusChanged(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	if !repository.IsValidObjectID(orderID) {
		return fmt.Errorf("%w: %q", ErrInvalidOrderID, orderID)
	}

	eventLog := s.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("status", status.String()),
	)

	switch status {
	case entities.OrderPrepared:
		created, err := s.deliveryRepository.CreateAssigned(ctx, orderID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		if created {
			eventLog.Info("delivery created for prepared order")
		} else {
			// повторная доставка события: доставка уже существует
			eventLog.Info("delivery already exists, event skipped")
		}
		return nil

	case entities.OrderCancelled:
		failed, err := s.deliveryRepository.FailByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("fail delivery: %w", err)
		}
		if failed {
			eventLog.Info("delivery failed for cancelled order")
		}
		return nil

	default:
		return nil
	}
}
