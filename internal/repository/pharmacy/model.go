package pharmacy

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PharmacyDB struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PharmacistUserID primitive.ObjectID `bson:"pharmacist_user_id"`
	Name             string             `bson:"name"`
	Address          string             `bson:"address,omitempty"`
	OpeningHours     string             `bson:"opening_hours,omitempty"`
	ContactPhone     string             `bson:"contact_phone,omitempty"`
	IsActive         bool               `bson:"is_active"`
	Rating           float64            `bson:"rating,omitempty"`
	RatingCount      int64              `bson:"rating_count,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
}
