package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/business-registry/internal/model"
)

// BusinessRepo is the in-memory business store. A single mutex guards
// the id counter and the map so that the name uniqueness check and the
// insert happen inside one critical section. Methods return copies;
// callers never see the shared structs.
type BusinessRepo struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]*model.Business
}

func NewBusinessRepo() *BusinessRepo {
	return &BusinessRepo{items: make(map[uint64]*model.Business)}
}

// snapshot copies a business so the caller cannot alias the stored
// record or its reviews slice.
func snapshot(b *model.Business) model.Business {
	out := *b
	out.Reviews = append([]string(nil), b.Reviews...)
	return out
}

// findByName scans for a business with the exact name. Collections are
// small; callers must hold at least the read lock.
func (r *BusinessRepo) findByName(name string) *model.Business {
	for _, b := range r.items {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Create inserts a new business owned by createdBy and returns it.
// Returns ErrNameExists when another business already holds the name.
func (r *BusinessRepo) Create(name, category, location, createdBy string) (model.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByName(name) != nil {
		return model.Business{}, ErrNameExists
	}
	r.nextID++
	now := time.Now().UTC()
	b := &model.Business{
		ID:        r.nextID,
		Name:      name,
		Category:  category,
		Location:  location,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items[b.ID] = b
	return snapshot(b), nil
}

// GetByID fetches a business by id.
func (r *BusinessRepo) GetByID(id uint64) (model.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return model.Business{}, ErrNotFound
	}
	return snapshot(b), nil
}

// List returns businesses ordered by id. When category is non-empty
// only businesses in that category are returned. An empty result is a
// valid empty slice, not nil, so it serializes as a JSON array.
func (r *BusinessRepo) List(category string) []model.Business {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Business, 0, len(r.items))
	for _, b := range r.items {
		if category != "" && b.Category != category {
			continue
		}
		out = append(out, snapshot(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update replaces name, category and location of an existing business.
// The name uniqueness check excludes the business itself so saving an
// unchanged name is allowed.
func (r *BusinessRepo) Update(id uint64, name, category, location string) (model.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return model.Business{}, ErrNotFound
	}
	if other := r.findByName(name); other != nil && other.ID != id {
		return model.Business{}, ErrNameExists
	}
	b.Name = name
	b.Category = category
	b.Location = location
	b.UpdatedAt = time.Now().UTC()
	return snapshot(b), nil
}

// Delete removes a business by id.
func (r *BusinessRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// AddReview appends a review to a business and returns the updated
// record.
func (r *BusinessRepo) AddReview(id uint64, review string) (model.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return model.Business{}, ErrNotFound
	}
	b.Reviews = append(b.Reviews, review)
	b.UpdatedAt = time.Now().UTC()
	return snapshot(b), nil
}
