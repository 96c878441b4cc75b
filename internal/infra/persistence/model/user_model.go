// Package model contains the bson persistence models and their mapping to
// and from the pure domain entities.
package model

import (
	"time"

	"bazar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserModel is the bson shape of a document in the users collection.
// The hash historically lives under the "password" key.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty"`
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model. A blank or
// malformed ID maps to the zero ObjectID so the driver can generate one.
func FromUserDomain(user *entity.User) *UserModel {
	oid, _ := primitive.ObjectIDFromHex(user.ID)

	return &UserModel{
		ID:           oid,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
