package order

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
	deliverysvc "medassist/internal/service/delivery"
	ordersvc "medassist/internal/service/order"
)

const collectionName = "orders"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// GetByPharmacy возвращает страницу заказов аптеки, новые первыми.
func (r *Repository) GetByPharmacy(ctx context.Context, pharmacyID string, status *entities.OrderStatusType, page entities.PageRequest) ([]entities.Order, int64, error) {
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, 0, ordersvc.ErrOrderNotFound
	}

	filter := bson.M{"pharmacy_id": pharmacyOID}
	if status != nil {
		filter["status"] = status.String()
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(page.Size)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository find error: %w", err)
	}

	var ordersDB []OrderDB
	if err := cursor.All(ctx, &ordersDB); err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository decode error: %w", err)
	}

	return ToDomainList(ordersDB), total, nil
}

// GetByIDForPharmacy возвращает заказ только своей аптеке.
func (r *Repository) GetByIDForPharmacy(ctx context.Context, id, pharmacyID string) (*entities.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ordersvc.ErrOrderNotFound
	}
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, ordersvc.ErrOrderNotFound
	}

	var orderDB OrderDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "pharmacy_id": pharmacyOID}).Decode(&orderDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, ordersvc.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// GetByID используется доставочной стороной: сводка заказа и проверка OTP.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, deliverysvc.ErrOrderNotFound
	}

	var orderDB OrderDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&orderDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, deliverysvc.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// ApplyAction выполняет действие аптеки над заказом. Исходный статус
// из таблицы переходов входит в фильтр условного обновления.
func (r *Repository) ApplyAction(ctx context.Context, id, pharmacyID string, action entities.OrderAction, reason *string, now time.Time) (*entities.Order, error) {
	from, to, ok := action.Transition()
	if !ok {
		return nil, ordersvc.ErrInvalidAction
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ordersvc.ErrOrderNotFound
	}
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, ordersvc.ErrOrderNotFound
	}

	filter := bson.M{
		"_id":         oid,
		"pharmacy_id": pharmacyOID,
		"status":      from.String(),
	}

	set := bson.M{
		"status":     to.String(),
		"updated_at": now,
	}
	switch action {
	case entities.OrderActionAccept:
		set["accepted_at"] = now
	case entities.OrderActionDecline:
		if reason != nil {
			set["cancellation_reason"] = *reason
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var orderDB OrderDB
	err = r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&orderDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, r.resolveActionMiss(ctx, oid, pharmacyOID)
		}
		return nil, fmt.Errorf("unexpected order repository apply action error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// resolveActionMiss различает чужой/несуществующий заказ и проигранную гонку.
func (r *Repository) resolveActionMiss(ctx context.Context, oid, pharmacyOID primitive.ObjectID) error {
	err := r.collection.FindOne(ctx, bson.M{"_id": oid, "pharmacy_id": pharmacyOID}).Err()
	if err != nil {
		if repository.IsNoDocuments(err) {
			return ordersvc.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository action check error: %w", err)
	}
	return ordersvc.ErrStatusConflict
}

// MirrorStatus дублирует статус доставки на родительский заказ.
// Вызывается best effort: транзакции между документами нет.
func (r *Repository) MirrorStatus(ctx context.Context, id string, status entities.OrderStatusType, now time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid order id %q: %w", id, err)
	}

	update := bson.M{"$set": bson.M{
		"status":     status.String(),
		"updated_at": now,
	}}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("unexpected order repository mirror status error: %w", err)
	}
	return nil
}
