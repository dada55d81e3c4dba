package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDB struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty"`
	Roles      []string           `bson:"roles,omitempty"`
	IsVerified bool               `bson:"is_verified"`
	CreatedAt  time.Time          `bson:"created_at"`
}
