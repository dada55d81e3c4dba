package pharmacy

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"medassist/internal/entities"
	"medassist/internal/repository"
	"medassist/internal/service/pharmacy"
)

const collectionName = "pharmacies"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// GetByPharmacistUserID находит аптеку вызывающего фармацевта (связь 1:1).
// Каждая аптечная операция начинается с этого поиска: его промах означает,
// что у вызывающего нет своей аптеки, и любая ручка отвечает not found.
func (r *Repository) GetByPharmacistUserID(ctx context.Context, userID string) (*entities.Pharmacy, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, pharmacy.ErrPharmacyNotFound
	}

	var pharmacyDB PharmacyDB
	err = r.collection.FindOne(ctx, bson.M{"pharmacist_user_id": userOID}).Decode(&pharmacyDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, pharmacy.ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy repository get error: %w", err)
	}

	return ToDomain(&pharmacyDB), nil
}

// Update меняет только переданные поля профиля аптеки.
func (r *Repository) Update(ctx context.Context, id string, modify entities.PharmacyModify) (*entities.Pharmacy, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, pharmacy.ErrPharmacyNotFound
	}

	set := bson.M{}
	if modify.Name != nil {
		set["name"] = *modify.Name
	}
	if modify.Address != nil {
		set["address"] = *modify.Address
	}
	if modify.OpeningHours != nil {
		set["opening_hours"] = *modify.OpeningHours
	}
	if modify.ContactPhone != nil {
		set["contact_phone"] = *modify.ContactPhone
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var pharmacyDB PharmacyDB
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&pharmacyDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, pharmacy.ErrPharmacyNotFound
		}
		return nil, fmt.Errorf("unexpected pharmacy repository update error: %w", err)
	}

	return ToDomain(&pharmacyDB), nil
}
