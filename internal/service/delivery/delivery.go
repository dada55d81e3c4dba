package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medassist/internal/entities"
	"medassist/pkg/logger"
)

type Delivery struct {
	repository      Repository
	orderRepository OrderRepository
	log             serviceLogger
}

func New(repository Repository, orderRepository OrderRepository, log serviceLogger) *Delivery {
	return &Delivery{
		repository:      repository,
		orderRepository: orderRepository,
		log:             log,
	}
}

// List возвращает страницу доставок водителя либо, при available=true,
// незанятый пул.
func (d *Delivery) List(ctx context.Context, driverID string, status *entities.DeliveryStatusType, available bool, page entities.PageRequest) ([]entities.Delivery, entities.Pagination, error) {
	if !page.Valid() {
		return nil, entities.Pagination{}, ErrInvalidPage
	}
	if status != nil && !status.Valid() {
		return nil, entities.Pagination{}, ErrInvalidStatus
	}

	var (
		deliveries []entities.Delivery
		total      int64
		err        error
	)
	if available {
		deliveries, total, err = d.repository.GetAvailable(ctx, page)
	} else {
		deliveries, total, err = d.repository.GetByDriver(ctx, driverID, status, page)
	}
	if err != nil {
		return nil, entities.Pagination{}, fmt.Errorf("list deliveries: %w", err)
	}

	return deliveries, entities.NewPagination(page, total), nil
}

// Get возвращает доставку со вложенной сводкой заказа. Сводка best effort:
// отсутствие родительского заказа не прячет саму доставку.
func (d *Delivery) Get(ctx context.Context, id, driverID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByIDForDriver(ctx, id, driverID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	orderEntity, err := d.orderRepository.GetByID(ctx, deliveryEntity.OrderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			d.log.With(
				logger.NewField("delivery_id", id),
				logger.NewField("order_id", deliveryEntity.OrderID),
			).Warn("delivery references missing order")
			return deliveryEntity, nil
		}
		return nil, fmt.Errorf("get delivery order: %w", err)
	}

	deliveryEntity.Order = &entities.OrderSummary{
		ID:              orderEntity.ID,
		TotalAmount:     orderEntity.TotalAmount,
		Status:          orderEntity.Status,
		ShippingAddress: orderEntity.ShippingAddress,
		ItemsCount:      len(orderEntity.Items),
	}
	return deliveryEntity, nil
}

// Accept закрепляет незанятую доставку за водителем. Гонку двух водителей
// решает условное обновление в хранилище: победитель ровно один.
func (d *Delivery) Accept(ctx context.Context, id, driverID string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.Claim(ctx, id, driverID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("claim delivery: %w", err)
	}

	return deliveryEntity, nil
}

// UpdateStatus переводит доставку в новый статус и зеркалирует его на
// родительский заказ по таблице соответствия.
func (d *Delivery) UpdateStatus(ctx context.Context, id, driverID string, upd entities.DeliveryStatusUpdate) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	// статус без разрешенных предшественников не бывает целью перехода
	if !upd.Status.Valid() || len(upd.Status.AllowedFrom()) == 0 {
		return nil, ErrInvalidStatus
	}
	if upd.Location != nil && !upd.Location.Valid() {
		return nil, ErrInvalidLocation
	}

	now := time.Now().UTC()

	deliveryEntity, err := d.repository.UpdateStatus(ctx, id, driverID, upd, now)
	if err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}

	if mirror, ok := upd.Status.OrderMirror(); ok {
		err = d.orderRepository.MirrorStatus(ctx, deliveryEntity.OrderID, mirror, now)
		if err != nil {
			// зеркалирование вне транзакции: доставка уже обновлена,
			// заказ догонит при следующем переходе
			d.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", deliveryEntity.OrderID),
				logger.NewField("status", mirror.String()),
			).Warn("order status mirror failed")
		}
	}

	return deliveryEntity, nil
}

// ConfirmDelivery завершает доставку по одноразовому коду получателя.
// Код сверяется с сохраненным в заказе точным сравнением строк; несовпадение
// ничего не меняет.
func (d *Delivery) ConfirmDelivery(ctx context.Context, id, driverID, otp string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidOTP(otp) {
		return nil, ErrInvalidOTPFormat
	}

	deliveryEntity, err := d.repository.GetByIDForDriver(ctx, id, driverID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if deliveryEntity.DriverID != driverID {
		return nil, ErrDeliveryNotFound
	}

	orderEntity, err := d.orderRepository.GetByID(ctx, deliveryEntity.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get delivery order: %w", err)
	}

	if orderEntity.DeliveryOTP != otp {
		return nil, ErrOTPMismatch
	}

	return d.UpdateStatus(ctx, id, driverID, entities.DeliveryStatusUpdate{
		Status: entities.DeliveryDelivered,
	})
}
