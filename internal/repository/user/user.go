package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"medassist/internal/entities"
	"medassist/internal/repository"
	driversvc "medassist/internal/service/driver"
	pharmacysvc "medassist/internal/service/pharmacy"
)

const collectionName = "users"

type Repository struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(collectionName),
	}
}

// GetDriver и GetPharmacist читают один и тот же документ, но промах
// превращают в ошибку своего потребителя.
func (r *Repository) GetDriver(ctx context.Context, id string) (*entities.User, error) {
	userEntity, err := r.getByID(ctx, id)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, driversvc.ErrUserNotFound
		}
		return nil, err
	}
	return userEntity, nil
}

func (r *Repository) GetPharmacist(ctx context.Context, id string) (*entities.User, error) {
	userEntity, err := r.getByID(ctx, id)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, pharmacysvc.ErrUserNotFound
		}
		return nil, err
	}
	return userEntity, nil
}

func (r *Repository) getByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var userDB UserDB
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&userDB)
	if err != nil {
		if repository.IsNoDocuments(err) {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userDB), nil
}
