package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderDB struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserID             primitive.ObjectID `bson:"user_id"`
	PharmacyID         primitive.ObjectID `bson:"pharmacy_id"`
	Items              []OrderItemDB      `bson:"items"`
	TotalAmount        float64            `bson:"total_amount"`
	Status             string             `bson:"status"`
	PaymentStatus      string             `bson:"payment_status,omitempty"`
	ShippingAddress    string             `bson:"shipping_address,omitempty"`
	DeliveryOTP        string             `bson:"otp_for_delivery,omitempty"`
	CancellationReason string             `bson:"cancellation_reason,omitempty"`
	AcceptedAt         *time.Time         `bson:"accepted_at,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

type OrderItemDB struct {
	MedicineID primitive.ObjectID `bson:"medicine_id"`
	BatchNo    string             `bson:"batch_no,omitempty"`
	Quantity   int64              `bson:"quantity"`
	Price      float64            `bson:"price"`
	Tax        float64            `bson:"tax,omitempty"`
}
