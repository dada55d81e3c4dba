package delivery

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveryDB struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty"`
	OrderID         primitive.ObjectID  `bson:"order_id"`
	DriverID        *primitive.ObjectID `bson:"driver_id,omitempty"`
	Status          string              `bson:"status"`
	AssignedAt      time.Time           `bson:"assigned_at"`
	AcceptedAt      *time.Time          `bson:"accepted_at,omitempty"`
	PickupAt        *time.Time          `bson:"pickup_at,omitempty"`
	DeliveredAt     *time.Time          `bson:"delivered_at,omitempty"`
	CurrentLocation *LocationDB         `bson:"current_location,omitempty"`
	Notes           string              `bson:"notes,omitempty"`
}

type LocationDB struct {
	Lat float64 `bson:"lat"`
	Lon float64 `bson:"lon"`
}
