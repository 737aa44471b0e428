package farmerRepo

import "farmmarket/models"

// FarmerRepository defines methods for farmer data access.
type FarmerRepository interface {
	// GetByID retrieves a farmer by its unique ID.
	GetByID(id string) (*models.Farmer, error)
	// GetByUserID retrieves the farmer profile owned by a user.
	GetByUserID(userID string) (*models.Farmer, error)
	// GetAll retrieves all farmers.
	GetAll() ([]models.Farmer, error)
	// GetOrganic retrieves all organic certified farmers.
	GetOrganic() ([]models.Farmer, error)
	// SearchByFarmName retrieves farmers whose farm name matches the query
	// (case-insensitive partial match).
	SearchByFarmName(farmName string) ([]models.Farmer, error)
	// Create inserts a new farmer record.
	Create(farmer *models.Farmer) error
	// Update modifies an existing farmer record.
	Update(farmer *models.Farmer) error
	// Delete removes a farmer record by its ID.
	Delete(id string) error
}
