package review

import (
	"testing"

	"bazar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReviews() []entity.Review {
	return []entity.Review{
		{Email: "a@x.com", Name: "A", Rating: 5, ReviewText: "great"},
		{Email: "b@x.com", Name: "B", Rating: 3, ReviewText: "okay"},
		{Email: "c@x.com", Name: "C", Rating: 1, ReviewText: "bad"},
	}
}

func TestUpsert_AppendsFreshEmail(t *testing.T) {
	existing := sampleReviews()
	incoming := entity.Review{Email: "d@x.com", Rating: 4, ReviewText: "nice"}

	merged := Upsert(existing, incoming)

	require.Len(t, merged, len(existing)+1)
	assert.Equal(t, existing, merged[:len(existing)])
	assert.Equal(t, incoming, merged[len(merged)-1])
}

func TestUpsert_ReplacesMatchInPlace(t *testing.T) {
	existing := sampleReviews()
	incoming := entity.Review{Email: "b@x.com", Rating: 5, ReviewText: "changed my mind"}

	merged := Upsert(existing, incoming)

	require.Len(t, merged, len(existing))
	assert.Equal(t, existing[0], merged[0])
	assert.Equal(t, incoming, merged[1])
	assert.Equal(t, existing[2], merged[2])
}

func TestUpsert_EmptyList(t *testing.T) {
	incoming := entity.Review{Email: "a@x.com", ReviewText: "first"}

	merged := Upsert(nil, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, incoming, merged[0])
}

func TestUpsert_EmailMatchIsCaseSensitive(t *testing.T) {
	existing := sampleReviews()
	incoming := entity.Review{Email: "B@x.com", ReviewText: "different reviewer"}

	merged := Upsert(existing, incoming)

	// "B@x.com" is a distinct reviewer from "b@x.com".
	require.Len(t, merged, len(existing)+1)
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	existing := sampleReviews()
	original := sampleReviews()

	Upsert(existing, entity.Review{Email: "b@x.com", ReviewText: "replaced"})

	assert.Equal(t, original, existing)
}

func TestUpsert_IdenticalResubmissionIsANoOp(t *testing.T) {
	// The surrounding write protocol reports a no-op write as a mismatch;
	// at the merge level the result is simply equal to the input.
	existing := sampleReviews()

	merged := Upsert(existing, existing[1])

	assert.Equal(t, existing, merged)
}

func TestFind_ReturnsMatch(t *testing.T) {
	existing := sampleReviews()

	found, ok := Find(existing, "b@x.com")

	require.True(t, ok)
	assert.Equal(t, existing[1], found)
}

func TestFind_NotFound(t *testing.T) {
	found, ok := Find(sampleReviews(), "nobody@x.com")

	assert.False(t, ok)
	assert.Zero(t, found)
}

func TestRemove_FirstMatchOnly(t *testing.T) {
	existing := sampleReviews()

	remaining, err := Remove(existing, "b@x.com")

	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, existing[0], remaining[0])
	assert.Equal(t, existing[2], remaining[1])
}

func TestRemove_NotFound(t *testing.T) {
	existing := sampleReviews()
	original := sampleReviews()

	remaining, err := Remove(existing, "nobody@x.com")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, remaining)
	assert.Equal(t, original, existing)
}

func TestRemove_EmptyList(t *testing.T) {
	_, err := Remove(nil, "a@x.com")

	assert.ErrorIs(t, err, ErrNotFound)
}
