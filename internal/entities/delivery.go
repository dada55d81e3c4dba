package entities

import "time"

type DeliveryStatusType string

const (
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryFailed    DeliveryStatusType = "failed"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) Valid() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit, DeliveryDelivered, DeliveryFailed:
		return true
	default:
		return false
	}
}

// deliveryTransitions: целевой статус -> статусы, из которых переход разрешен.
var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryPickedUp:  {DeliveryAssigned},
	DeliveryInTransit: {DeliveryPickedUp},
	DeliveryDelivered: {DeliveryPickedUp, DeliveryInTransit},
	DeliveryFailed:    {DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit},
}

// AllowedFrom возвращает статусы, из которых разрешен переход в s.
// Репозиторий подставляет этот набор в фильтр условного обновления,
// так что нелегальный скачок статуса атомарно отклоняется хранилищем.
func (s DeliveryStatusType) AllowedFrom() []DeliveryStatusType {
	return deliveryTransitions[s]
}

// OrderMirror возвращает статус заказа, который нужно продублировать
// при переходе доставки в s. Зеркалирование одностороннее и best effort.
func (s DeliveryStatusType) OrderMirror() (OrderStatusType, bool) {
	switch s {
	case DeliveryPickedUp, DeliveryInTransit:
		return OrderInTransit, true
	case DeliveryDelivered:
		return OrderDelivered, true
	default:
		return "", false
	}
}

type Delivery struct {
	ID              string
	OrderID         string
	DriverID        string // пустой, пока доставку никто не забрал
	Status          DeliveryStatusType
	AssignedAt      time.Time
	AcceptedAt      *time.Time
	PickupAt        *time.Time
	DeliveredAt     *time.Time
	CurrentLocation *Location
	Notes           string

	// Order заполняется только при запросе одной доставки.
	Order *OrderSummary
}

// DeliveryStatusUpdate описывает запрошенный водителем переход.
type DeliveryStatusUpdate struct {
	Status   DeliveryStatusType
	Location *Location
	Notes    *string
}
