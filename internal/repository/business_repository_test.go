package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessRepoCreate(t *testing.T) {
	r := NewBusinessRepo()

	a, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, "alice@x.com", a.CreatedBy)

	b, err := r.Create("Globex", "Tech", "SF", "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), b.ID)
}

func TestBusinessRepoNameUniqueness(t *testing.T) {
	r := NewBusinessRepo()

	_, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)

	_, err = r.Create("Acme", "Tech", "SF", "bob@x.com")
	assert.ErrorIs(t, err, ErrNameExists)

	// Case-sensitive exact match: a different casing is a new name.
	_, err = r.Create("acme", "Tech", "SF", "bob@x.com")
	assert.NoError(t, err)
}

func TestBusinessRepoListFilter(t *testing.T) {
	r := NewBusinessRepo()
	mustCreate := func(name, category string) {
		_, err := r.Create(name, category, "NYC", "alice@x.com")
		require.NoError(t, err)
	}
	mustCreate("Acme", "Retail")
	mustCreate("Globex", "Tech")
	mustCreate("Initech", "Tech")

	all := r.List("")
	require.Len(t, all, 3)
	// Ordered by id.
	assert.Equal(t, "Acme", all[0].Name)
	assert.Equal(t, "Initech", all[2].Name)

	tech := r.List("Tech")
	require.Len(t, tech, 2)
	assert.Equal(t, "Globex", tech[0].Name)

	assert.Empty(t, r.List("Food"))
	assert.NotNil(t, r.List("Food"))
}

func TestBusinessRepoUpdate(t *testing.T) {
	r := NewBusinessRepo()
	a, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)
	_, err = r.Create("Globex", "Tech", "SF", "bob@x.com")
	require.NoError(t, err)

	// Keeping its own name is not a conflict.
	got, err := r.Update(a.ID, "Acme", "Food", "LA")
	require.NoError(t, err)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, "LA", got.Location)

	_, err = r.Update(a.ID, "Globex", "Food", "LA")
	assert.ErrorIs(t, err, ErrNameExists)

	_, err = r.Update(99, "Other", "Food", "LA")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessRepoDelete(t *testing.T) {
	r := NewBusinessRepo()
	a, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)

	require.NoError(t, r.Delete(a.ID))
	_, err = r.GetByID(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(a.ID), ErrNotFound)
}

func TestBusinessRepoAddReview(t *testing.T) {
	r := NewBusinessRepo()
	a, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)

	got, err := r.AddReview(a.ID, "great service")
	require.NoError(t, err)
	assert.Equal(t, []string{"great service"}, got.Reviews)

	got, err = r.AddReview(a.ID, "would return")
	require.NoError(t, err)
	assert.Len(t, got.Reviews, 2)

	_, err = r.AddReview(99, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBusinessRepoSnapshots(t *testing.T) {
	r := NewBusinessRepo()
	a, err := r.Create("Acme", "Retail", "NYC", "alice@x.com")
	require.NoError(t, err)
	_, err = r.AddReview(a.ID, "first")
	require.NoError(t, err)

	got, err := r.GetByID(a.ID)
	require.NoError(t, err)
	got.Reviews[0] = "mutated"
	got.Name = "Mutated"

	again, err := r.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.Name)
	assert.Equal(t, "first", again.Reviews[0])
}
