package entities

import "time"

type OrderStatusType string

const (
	OrderCreated            OrderStatusType = "created"
	OrderAcceptedByPharmacy OrderStatusType = "accepted_by_pharmacy"
	OrderPrepared           OrderStatusType = "prepared"
	OrderDriverAssigned     OrderStatusType = "driver_assigned"
	OrderInTransit          OrderStatusType = "in_transit"
	OrderDelivered          OrderStatusType = "delivered"
	OrderCancelled          OrderStatusType = "cancelled"
	OrderFailed             OrderStatusType = "failed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderCreated, OrderAcceptedByPharmacy, OrderPrepared, OrderDriverAssigned,
		OrderInTransit, OrderDelivered, OrderCancelled, OrderFailed:
		return true
	default:
		return false
	}
}

// OrderAction это действие аптеки над заказом. Допустимые переходы статуса
// заданы закрытой таблицей: любая другая пара (статус, действие) отклоняется.
type OrderAction string

const (
	OrderActionAccept  OrderAction = "accept"
	OrderActionDecline OrderAction = "decline"
	OrderActionPrepare OrderAction = "prepare"
)

type orderTransition struct {
	From OrderStatusType
	To   OrderStatusType
}

var orderTransitions = map[OrderAction]orderTransition{
	OrderActionAccept:  {From: OrderCreated, To: OrderAcceptedByPharmacy},
	OrderActionDecline: {From: OrderCreated, To: OrderCancelled},
	OrderActionPrepare: {From: OrderAcceptedByPharmacy, To: OrderPrepared},
}

// Transition возвращает пару (исходный статус, целевой статус) для действия.
// Исходный статус попадает в фильтр условного обновления, поэтому проверка
// и запись выполняются атомарно на стороне хранилища.
func (a OrderAction) Transition() (from, to OrderStatusType, ok bool) {
	t, ok := orderTransitions[a]
	return t.From, t.To, ok
}

type OrderItem struct {
	MedicineID string
	BatchNo    string
	Quantity   int64
	Price      float64
	Tax        float64
}

type Order struct {
	ID                 string
	UserID             string
	PharmacyID         string
	Items              []OrderItem
	TotalAmount        float64
	Status             OrderStatusType
	PaymentStatus      string
	ShippingAddress    string
	DeliveryOTP        string
	CancellationReason string
	AcceptedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderSummary это проекция заказа, встраиваемая в детали доставки.
type OrderSummary struct {
	ID              string
	TotalAmount     float64
	Status          OrderStatusType
	ShippingAddress string
	ItemsCount      int
}
