package mongo

import (
	"context"
	"fmt"
	"time"

	"bazar/internal/domain/entity"
	domainerrors "bazar/internal/domain/errors"
	"bazar/internal/domain/repository"
	"bazar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// productRepository implements the repository.ProductRepository interface
// against the products collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{
		coll: db.Collection(productsCollection),
	}
}

// Insert persists a new product document and returns its generated hex id.
func (repo *productRepository) Insert(ctx context.Context, product *entity.Product) (string, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, model.FromProductDomain(product))
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert product")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

// Find returns the products matching the filter. Category takes precedence
// over FlashSale, matching the historical query contract.
func (repo *productRepository) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["categories"] = filter.Category
	} else if filter.FlashSale != nil {
		query["flash_sale"] = *filter.FlashSale
	}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var productModels []model.ProductModel
	if err := cursor.All(ctx, &productModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, model.ToProductDomain(&productModels[i]))
	}

	return products, nil
}

// FindByID retrieves a single product by its hex id.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id is an internal fault, not a 404; see the listing
		// endpoint contract.
		return nil, errors.Wrap(err, "invalid product id")
	}

	var productM model.ProductModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&productM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return model.ToProductDomain(&productM), nil
}

// Delete removes a product document by id.
func (repo *productRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "invalid product id")
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return &repository.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// UpsertReview keeps the one-review-per-email invariant with the store's own
// array primitives instead of rewriting the whole list: first an in-place
// positional replace of the matching element, then a push when the reviewer
// has no entry yet. Both steps are single-document atomic updates, so
// concurrent submissions by different reviewers cannot lose each other.
func (repo *productRepository) UpsertReview(ctx context.Context, productID string, rev *entity.Review) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errors.Wrap(err, "invalid product id")
	}

	revM := model.FromReviewDomain(rev)

	replaceFilter := bson.M{"_id": oid, "reviews.email": rev.Email}
	replaceUpdate := bson.M{"$set": bson.M{"reviews.$": revM}}

	result, err := repo.coll.UpdateOne(ctx, replaceFilter, replaceUpdate)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace review")
	}

	if result.MatchedCount == 1 {
		if result.ModifiedCount != 1 {
			// The reviewer's entry matched but nothing changed: the
			// resubmission was byte-identical to the stored review. The write
			// protocol reports this as a mismatch rather than a success; a
			// no-op resubmission is indistinguishable from a failed write.
			return domainerrors.ErrReviewWriteMismatch.WithDetails(
				fmt.Sprintf("matched %d, modified %d", result.MatchedCount, result.ModifiedCount))
		}

		return nil
	}

	// No entry for this reviewer yet; append one.
	pushUpdate := bson.M{"$push": bson.M{"reviews": revM}}

	result, err = repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, pushUpdate)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push review")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}
	if result.ModifiedCount != 1 {
		return domainerrors.ErrReviewWriteMismatch.WithDetails(
			fmt.Sprintf("matched %d, modified %d", result.MatchedCount, result.ModifiedCount))
	}

	return nil
}

// RemoveReview pulls the review with the given email out of the product's
// review list in one atomic update.
func (repo *productRepository) RemoveReview(ctx context.Context, productID string, email string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return errors.Wrap(err, "invalid product id")
	}

	update := bson.M{"$pull": bson.M{"reviews": bson.M{"email": email}}}

	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove review")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}
