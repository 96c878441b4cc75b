package model

import (
	"time"

	"bazar/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductModel is the bson shape of a document in the products collection.
type ProductModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Categories  []string           `bson:"categories,omitempty"`
	FlashSale   bool               `bson:"flash_sale"`
	Reviews     []ReviewModel      `bson:"reviews,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty"`
}

// ReviewModel is embedded in ProductModel.Reviews. The email key is the
// reviewer identity the merge protocol matches on.
type ReviewModel struct {
	Email      string    `bson:"email"`
	Name       string    `bson:"name,omitempty"`
	Rating     int       `bson:"rating"`
	ReviewText string    `bson:"reviewText"`
	CreatedAt  time.Time `bson:"createdAt,omitempty"`
}

// ToProductDomain maps a persistence model back to a pure domain entity.
func ToProductDomain(m *ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Categories:  m.Categories,
		FlashSale:   m.FlashSale,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	for _, rev := range m.Reviews {
		product.Reviews = append(product.Reviews, *ToReviewDomain(&rev))
	}

	return product
}

// FromProductDomain maps a domain entity to its persistence model.
func FromProductDomain(product *entity.Product) *ProductModel {
	oid, _ := primitive.ObjectIDFromHex(product.ID)

	m := &ProductModel{
		ID:          oid,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		Categories:  product.Categories,
		FlashSale:   product.FlashSale,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	for _, rev := range product.Reviews {
		m.Reviews = append(m.Reviews, *FromReviewDomain(&rev))
	}

	return m
}

// ToReviewDomain maps an embedded review document to the domain entity.
func ToReviewDomain(m *ReviewModel) *entity.Review {
	return &entity.Review{
		Email:      m.Email,
		Name:       m.Name,
		Rating:     m.Rating,
		ReviewText: m.ReviewText,
		CreatedAt:  m.CreatedAt,
	}
}

// FromReviewDomain maps a domain review to its embedded bson shape.
func FromReviewDomain(rev *entity.Review) *ReviewModel {
	return &ReviewModel{
		Email:      rev.Email,
		Name:       rev.Name,
		Rating:     rev.Rating,
		ReviewText: rev.ReviewText,
		CreatedAt:  rev.CreatedAt,
	}
}
