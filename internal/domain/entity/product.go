package entity

import "time"

// Product is a catalog listing. Reviews live inside the product document;
// a review has no identity or storage location of its own.
type Product struct {
	ID          string    // Hex-encoded object id of the product document.
	Name        string    // Listing title.
	Description string    // Free-form listing description.
	Price       float64   // Unit price.
	Image       string    // URL of the primary product image.
	Categories  []string  // Category tags used by the listing filter.
	FlashSale   bool      // Whether the product participates in the flash sale.
	Reviews     []Review  // Embedded reviews, at most one per reviewer email.
	CreatedAt   time.Time // Timestamp of when this listing was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Review is embedded in Product.Reviews. The Email field is the single
// source of reviewer identity; the one-review-per-email invariant is keyed
// on it with an exact, case-sensitive match.
type Review struct {
	Email      string    // Reviewer identity and dedup key.
	Name       string    // Reviewer display name.
	Rating     int       // Star rating, 1 to 5.
	ReviewText string    // The review body.
	CreatedAt  time.Time // Timestamp of the reviewer's first submission; kept across replacements.
}
