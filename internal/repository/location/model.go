package location

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPointDB хранится в формате GeoJSON: coordinates = [lon, lat].
type GeoPointDB struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type DriverLocationDB struct {
	DriverID  primitive.ObjectID `bson:"driver_id"`
	Location  GeoPointDB         `bson:"location"`
	UpdatedAt time.Time          `bson:"updated_at"`
}
