package farmer

import (
	"context"

	farmerRepo "farmmarket/database/repository/farmer"
	"farmmarket/models"
)

// NearbyFarmer is a farmer annotated with its distance from a search origin.
type NearbyFarmer struct {
	Farmer     models.Farmer `json:"farmer"`
	DistanceKm float64       `json:"distanceKm"`
}

// FarmerService manages farmer profiles and geographic discovery.
type FarmerService interface {
	// CreateFarmer registers a new farmer profile.
	CreateFarmer(ctx context.Context, farmer *models.Farmer) (*models.Farmer, error)
	// GetFarmer retrieves a farmer profile by ID.
	GetFarmer(ctx context.Context, id string) (*models.Farmer, error)
	// GetFarmerByUserID retrieves the farmer profile owned by a user.
	GetFarmerByUserID(ctx context.Context, userID string) (*models.Farmer, error)
	// UpdateFarmer modifies an existing farmer profile.
	UpdateFarmer(ctx context.Context, farmer *models.Farmer) error
	// DeleteFarmer removes a farmer profile.
	DeleteFarmer(ctx context.Context, id string) error
	// ListFarmers retrieves all farmer profiles.
	ListFarmers(ctx context.Context) ([]models.Farmer, error)
	// GetOrganicFarmers retrieves all organic certified farmers.
	GetOrganicFarmers(ctx context.Context) ([]models.Farmer, error)
	// SearchByFarmName finds farmers by case-insensitive partial name match.
	SearchByFarmName(ctx context.Context, query string) ([]models.Farmer, error)
	// SearchByLocation finds farmers within radiusKm of the given point,
	// sorted nearest first. Farmers with no stored location are excluded.
	SearchByLocation(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyFarmer, error)
}

// DefaultFarmerService is the production FarmerService.
type DefaultFarmerService struct {
	Repo farmerRepo.FarmerRepository
}

// NewFarmerService constructs a FarmerService backed by the given repository.
func NewFarmerService(repo farmerRepo.FarmerRepository) FarmerService {
	return &DefaultFarmerService{Repo: repo}
}
