package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// IsValidObjectID проверяет, что строка это 24-символьный hex ObjectID.
// Единственное место, где слой сервисов касается формата ключей хранилища.
func IsValidObjectID(id string) bool {
	return primitive.IsValidObjectID(id)
}
