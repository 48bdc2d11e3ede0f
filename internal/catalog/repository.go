// Package catalog stores the campus buildings served by the map server and
// the server-side category filter.
package catalog

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"campusmap/internal/models"
)

var ErrNotFound = errors.New("campus not found")

type Repository interface {
	List(ctx context.Context) ([]models.Campus, error)
	Get(ctx context.Context, id models.ID) (*models.Campus, error)
	// Search returns the buildings whose name or address contains term,
	// ignoring case.
	Search(ctx context.Context, term string) ([]models.Campus, error)
}

// Matches reports whether term occurs in the campus name or address,
// ignoring case. An empty term matches everything.
func Matches(c models.Campus, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Address), term)
}

// MemoryRepository serves a fixed set of buildings from memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	campuses []models.Campus
}

func NewMemoryRepository(campuses []models.Campus) *MemoryRepository {
	return &MemoryRepository{campuses: slices.Clone(campuses)}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Campus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.campuses), nil
}

func (r *MemoryRepository) Get(_ context.Context, id models.ID) (*models.Campus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.campuses {
		if sameID(r.campuses[i].ID, id) {
			c := r.campuses[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) Search(_ context.Context, term string) ([]models.Campus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := []models.Campus{}
	for _, c := range r.campuses {
		if Matches(c, term) {
			results = append(results, c)
		}
	}
	return results, nil
}

// sameID compares ids numerically when both parse, so "07" finds 7.
func sameID(a, b models.ID) bool {
	if a == b {
		return true
	}
	ai, errA := a.Int()
	bi, errB := b.Int()
	return errA == nil && errB == nil && ai == bi
}
