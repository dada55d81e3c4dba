package inventory

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
	"medassist/internal/service/inventory"
)

const collectionName = "inventory"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// GetByPharmacy возвращает страницу позиций склада аптеки, новые первыми.
func (r *Repository) GetByPharmacy(ctx context.Context, pharmacyID string, page entities.PageRequest) ([]entities.InventoryItem, int64, error) {
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, 0, inventory.ErrItemNotFound
	}

	filter := bson.M{"pharmacy_id": pharmacyOID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected inventory repository count error: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(page.Size)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected inventory repository find error: %w", err)
	}

	var itemsDB []InventoryItemDB
	if err := cursor.All(ctx, &itemsDB); err != nil {
		return nil, 0, fmt.Errorf("unexpected inventory repository decode error: %w", err)
	}

	return ToDomainList(itemsDB), total, nil
}

func (r *Repository) GetByIDForPharmacy(ctx context.Context, id, pharmacyID string) (*entities.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, inventory.ErrItemNotFound
	}
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, inventory.ErrItemNotFound
	}

	var itemDB InventoryItemDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "pharmacy_id": pharmacyOID}).Decode(&itemDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository get error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

// Create заводит новую позицию. Резерв всегда стартует с нуля.
func (r *Repository) Create(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	pharmacyOID, err := primitive.ObjectIDFromHex(item.PharmacyID)
	if err != nil {
		return nil, inventory.ErrPharmacyNotFound
	}
	medicineOID, err := primitive.ObjectIDFromHex(item.MedicineID)
	if err != nil {
		return nil, fmt.Errorf("invalid medicine id %q: %w", item.MedicineID, err)
	}

	itemDB := InventoryItemDB{
		ID:                primitive.NewObjectID(),
		PharmacyID:        pharmacyOID,
		MedicineID:        medicineOID,
		BatchNo:           item.BatchNo,
		ExpiryDate:        item.ExpiryDate,
		QuantityAvailable: item.QuantityAvailable,
		ReservedQty:       0,
		MRP:               item.MRP,
		SellingPrice:      item.SellingPrice,
		CreatedAt:         item.CreatedAt,
	}

	_, err = r.collection.InsertOne(ctx, itemDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected inventory repository create error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

// Update меняет только переданные поля позиции своей аптеки.
func (r *Repository) Update(ctx context.Context, id, pharmacyID string, modify entities.InventoryItemModify) (*entities.InventoryItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, inventory.ErrItemNotFound
	}
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return nil, inventory.ErrItemNotFound
	}

	set := bson.M{}
	if modify.BatchNo != nil {
		set["batch_no"] = *modify.BatchNo
	}
	if modify.ExpiryDate != nil {
		set["expiry_date"] = *modify.ExpiryDate
	}
	if modify.QuantityAvailable != nil {
		set["quantity_available"] = *modify.QuantityAvailable
	}
	if modify.MRP != nil {
		set["mrp"] = *modify.MRP
	}
	if modify.SellingPrice != nil {
		set["selling_price"] = *modify.SellingPrice
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var itemDB InventoryItemDB
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "pharmacy_id": pharmacyOID},
		bson.M{"$set": set},
		opts,
	).Decode(&itemDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, inventory.ErrItemNotFound
		}
		return nil, fmt.Errorf("unexpected inventory repository update error: %w", err)
	}

	return ToDomain(&itemDB), nil
}

func (r *Repository) Delete(ctx context.Context, id, pharmacyID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return inventory.ErrItemNotFound
	}
	pharmacyOID, err := primitive.ObjectIDFromHex(pharmacyID)
	if err != nil {
		return inventory.ErrItemNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "pharmacy_id": pharmacyOID})
	if err != nil {
		return fmt.Errorf("unexpected inventory repository delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return inventory.ErrItemNotFound
	}

	return nil
}

// CountExpired считает партии с истекшим сроком годности по всем аптекам.
func (r *Repository) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"expiry_date": bson.M{"$lt": now}})
	if err != nil {
		return 0, fmt.Errorf("unexpected inventory repository count expired error: %w", err)
	}
	return count, nil
}
