package inventory

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItemDB struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	PharmacyID        primitive.ObjectID `bson:"pharmacy_id"`
	MedicineID        primitive.ObjectID `bson:"medicine_id"`
	BatchNo           string             `bson:"batch_no"`
	ExpiryDate        time.Time          `bson:"expiry_date"`
	QuantityAvailable int64              `bson:"quantity_available"`
	ReservedQty       int64              `bson:"reserved_qty"`
	MRP               float64            `bson:"mrp"`
	SellingPrice      float64            `bson:"selling_price"`
	CreatedAt         time.Time          `bson:"created_at"`
}
