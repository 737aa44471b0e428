package farmer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"farmmarket/models"

	"github.com/google/uuid"
)

// CreateFarmer registers a new farmer profile.
func (s *DefaultFarmerService) CreateFarmer(ctx context.Context, farmer *models.Farmer) (*models.Farmer, error) {
	if farmer.ID == "" {
		farmer.ID = uuid.NewString()
	}
	now := time.Now()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now

	if err := s.Repo.Create(farmer); err != nil {
		return nil, fmt.Errorf("failed to create farmer: %w", err)
	}
	return farmer, nil
}

// GetFarmer retrieves a farmer profile by ID.
func (s *DefaultFarmerService) GetFarmer(ctx context.Context, id string) (*models.Farmer, error) {
	return s.Repo.GetByID(id)
}

// GetFarmerByUserID retrieves the farmer profile owned by a user.
func (s *DefaultFarmerService) GetFarmerByUserID(ctx context.Context, userID string) (*models.Farmer, error) {
	return s.Repo.GetByUserID(userID)
}

// UpdateFarmer modifies an existing farmer profile.
func (s *DefaultFarmerService) UpdateFarmer(ctx context.Context, farmer *models.Farmer) error {
	farmer.UpdatedAt = time.Now()
	return s.Repo.Update(farmer)
}

// DeleteFarmer removes a farmer profile.
func (s *DefaultFarmerService) DeleteFarmer(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}

// ListFarmers retrieves all farmer profiles.
func (s *DefaultFarmerService) ListFarmers(ctx context.Context) ([]models.Farmer, error) {
	return s.Repo.GetAll()
}

// GetOrganicFarmers retrieves all organic certified farmers.
func (s *DefaultFarmerService) GetOrganicFarmers(ctx context.Context) ([]models.Farmer, error) {
	return s.Repo.GetOrganic()
}

// SearchByFarmName finds farmers by case-insensitive partial name match.
func (s *DefaultFarmerService) SearchByFarmName(ctx context.Context, query string) ([]models.Farmer, error) {
	return s.Repo.SearchByFarmName(query)
}

// SearchByLocation finds farmers within radiusKm of the given point, sorted
// nearest first. The scan covers the full farmer set; farmers with no stored
// location never match regardless of radius.
func (s *DefaultFarmerService) SearchByLocation(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyFarmer, error) {
	farmers, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load farmers: %w", err)
	}

	nearby := []NearbyFarmer{}
	for _, f := range farmers {
		if f.Location == nil {
			continue
		}
		d := DistanceKm(lat, lng, f.Location.Latitude, f.Location.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, NearbyFarmer{Farmer: f, DistanceKm: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}
