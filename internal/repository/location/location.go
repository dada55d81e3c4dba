package location

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"medassist/internal/entities"
)

const collectionName = "driver_locations"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// Upsert целиком перезаписывает последнюю точку водителя: истории нет,
// побеждает последняя запись.
func (r *Repository) Upsert(ctx context.Context, driverID string, loc entities.Location, now time.Time) error {
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return fmt.Errorf("invalid driver id %q: %w", driverID, err)
	}

	filter := bson.M{"driver_id": driverOID}
	update := bson.M{"$set": bson.M{
		"location": GeoPointDB{
			Type:        "Point",
			Coordinates: []float64{loc.Lon, loc.Lat},
		},
		"updated_at": now,
	}}

	_, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("unexpected location repository upsert error: %w", err)
	}

	return nil
}
