package mongo

import (
	"context"
	"time"

	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	"bazar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface against
// the users collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(usersCollection),
	}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		// If no document matches, return a domain-specific error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return model.ToUserDomain(&userM), nil
}

// Create persists a new user document and writes the generated id back onto
// the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, model.FromUserDomain(user))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}

// List returns every user in the collection.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var userModels []model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, model.ToUserDomain(&userModels[i]))
	}

	return users, nil
}

// PromoteToAdmin upserts the user's role to "admin" by id.
func (repo *userRepository) PromoteToAdmin(ctx context.Context, id string) (*repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id")
	}

	update := bson.M{"$set": bson.M{"role": entity.RoleAdmin, "updatedAt": time.Now()}}

	result, err := repo.coll.UpdateByID(ctx, oid, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user role")
	}

	out := &repository.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
	if upserted, ok := result.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = upserted.Hex()
	}

	return out, nil
}

// Delete removes a user document by id.
func (repo *userRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id")
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}
