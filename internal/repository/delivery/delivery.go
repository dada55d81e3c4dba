package delivery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"medassist/internal/entities"
	"medassist/internal/repository"
	"medassist/internal/service/delivery"
)

const collectionName = "deliveries"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// GetByDriver возвращает страницу доставок водителя, новые назначения первыми.
func (r *Repository) GetByDriver(ctx context.Context, driverID string, status *entities.DeliveryStatusType, page entities.PageRequest) ([]entities.Delivery, int64, error) {
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return nil, 0, delivery.ErrDeliveryNotFound
	}

	filter := bson.M{"driver_id": driverOID}
	if status != nil {
		filter["status"] = status.String()
	}

	return r.findPage(ctx, filter, page)
}

// GetAvailable возвращает страницу незанятого пула: назначенные доставки
// без водителя.
func (r *Repository) GetAvailable(ctx context.Context, page entities.PageRequest) ([]entities.Delivery, int64, error) {
	filter := bson.M{
		"status":    entities.DeliveryAssigned.String(),
		"driver_id": bson.M{"$exists": false},
	}

	return r.findPage(ctx, filter, page)
}

func (r *Repository) findPage(ctx context.Context, filter bson.M, page entities.PageRequest) ([]entities.Delivery, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "assigned_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(page.Size)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository find error: %w", err)
	}

	var deliveriesDB []DeliveryDB
	if err := cursor.All(ctx, &deliveriesDB); err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository decode error: %w", err)
	}

	return ToDomainList(deliveriesDB), total, nil
}

// GetByIDForDriver возвращает доставку, если она принадлежит водителю
// либо еще никем не забрана. Чужие доставки неотличимы от несуществующих.
func (r *Repository) GetByIDForDriver(ctx context.Context, id, driverID string) (*entities.Delivery, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}

	filter := bson.M{
		"_id": oid,
		"$or": bson.A{
			bson.M{"driver_id": driverOID},
			bson.M{"driver_id": bson.M{"$exists": false}},
		},
	}

	var deliveryDB DeliveryDB
	err = r.collection.FindOne(ctx, filter).Decode(&deliveryDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// Claim атомарно закрепляет незанятую доставку за водителем. Фильтр
// условного обновления гарантирует не более одного победителя.
func (r *Repository) Claim(ctx context.Context, id, driverID string, now time.Time) (*entities.Delivery, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}

	filter := bson.M{
		"_id":       oid,
		"status":    entities.DeliveryAssigned.String(),
		"driver_id": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"driver_id":   driverOID,
		"accepted_at": now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var deliveryDB DeliveryDB
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&deliveryDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, r.resolveClaimMiss(ctx, oid)
		}
		return nil, fmt.Errorf("unexpected delivery repository claim error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// resolveClaimMiss различает несуществующую доставку и проигранную гонку.
func (r *Repository) resolveClaimMiss(ctx context.Context, oid primitive.ObjectID) error {
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Err()
	if err != nil {
		if repository.IsNoDocuments(err) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository claim check error: %w", err)
	}
	return delivery.ErrAlreadyClaimed
}

// UpdateStatus переводит доставку водителя в новый статус. Набор разрешенных
// предшественников входит в фильтр, так что проверка и запись атомарны.
func (r *Repository) UpdateStatus(ctx context.Context, id, driverID string, upd entities.DeliveryStatusUpdate, now time.Time) (*entities.Delivery, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return nil, delivery.ErrDeliveryNotFound
	}

	allowed := upd.Status.AllowedFrom()
	allowedRaw := make([]string, 0, len(allowed))
	for _, s := range allowed {
		allowedRaw = append(allowedRaw, s.String())
	}

	filter := bson.M{
		"_id":       oid,
		"driver_id": driverOID,
		"status":    bson.M{"$in": allowedRaw},
	}

	set := bson.M{"status": upd.Status.String()}
	switch upd.Status {
	case entities.DeliveryPickedUp:
		set["pickup_at"] = now
	case entities.DeliveryDelivered:
		set["delivered_at"] = now
	}
	if upd.Location != nil {
		set["current_location"] = FromDomainLocation(upd.Location)
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var deliveryDB DeliveryDB
	err = r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&deliveryDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, r.resolveStatusMiss(ctx, oid, driverOID)
		}
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) resolveStatusMiss(ctx context.Context, oid, driverOID primitive.ObjectID) error {
	err := r.collection.FindOne(ctx, bson.M{"_id": oid, "driver_id": driverOID}).Err()
	if err != nil {
		if repository.IsNoDocuments(err) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository status check error: %w", err)
	}
	return delivery.ErrStatusConflict
}

// GetStatsByDriver считает завершенные и активные доставки водителя.
func (r *Repository) GetStatsByDriver(ctx context.Context, driverID string) (*entities.DriverStats, error) {
	driverOID, err := primitive.ObjectIDFromHex(driverID)
	if err != nil {
		return &entities.DriverStats{}, nil
	}

	completed, err := r.collection.CountDocuments(ctx, bson.M{
		"driver_id": driverOID,
		"status":    entities.DeliveryDelivered.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository stats error: %w", err)
	}

	inProgress, err := r.collection.CountDocuments(ctx, bson.M{
		"driver_id": driverOID,
		"status": bson.M{"$in": []string{
			entities.DeliveryAssigned.String(),
			entities.DeliveryPickedUp.String(),
			entities.DeliveryInTransit.String(),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository stats error: %w", err)
	}

	return &entities.DriverStats{
		DeliveriesCompleted:  completed,
		DeliveriesInProgress: inProgress,
	}, nil
}

// CreateAssigned заводит незанятую доставку для заказа, если ее еще нет.
// Upsert с $setOnInsert делает операцию идемпотентной при повторной
// доставке события.
func (r *Repository) CreateAssigned(ctx context.Context, orderID string, now time.Time) (bool, error) {
	orderOID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return false, fmt.Errorf("invalid order id %q: %w", orderID, err)
	}

	filter := bson.M{"order_id": orderOID}
	update := bson.M{"$setOnInsert": bson.M{
		"order_id":    orderOID,
		"status":      entities.DeliveryAssigned.String(),
		"assigned_at": now,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return result.UpsertedCount > 0, nil
}

// FailByOrderID проваливает незавершенную доставку отмененного заказа.
func (r *Repository) FailByOrderID(ctx context.Context, orderID string) (bool, error) {
	orderOID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return false, fmt.Errorf("invalid order id %q: %w", orderID, err)
	}

	filter := bson.M{
		"order_id": orderOID,
		"status": bson.M{"$in": []string{
			entities.DeliveryAssigned.String(),
			entities.DeliveryPickedUp.String(),
			entities.DeliveryInTransit.String(),
		}},
	}
	update := bson.M{"$set": bson.M{"status": entities.DeliveryFailed.String()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository fail error: %w", err)
	}

	return result.ModifiedCount > 0, nil
}
