package handlers

import (
	"net/http"
	"strconv"

	"farmmarket/models"
	"farmmarket/services/farmer"
	"farmmarket/utils"

	"github.com/gin-gonic/gin"
)

// FarmerHandler exposes farmer profiles and geographic discovery over HTTP.
type FarmerHandler struct {
	Service farmer.FarmerService
}

func NewFarmerHandler(svc farmer.FarmerService) *FarmerHandler {
	return &FarmerHandler{Service: svc}
}

type createFarmerRequest struct {
	FarmName         string           `json:"farmName" binding:"required"`
	Description      string           `json:"description"`
	OrganicCertified bool             `json:"organicCertified"`
	Location         *models.Location `json:"location"`
}

// CreateFarmerHandler registers a farmer profile for the caller.
func (h *FarmerHandler) CreateFarmerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Location != nil {
		if msg, ok := validateCoordinates(req.Location.Latitude, req.Location.Longitude); !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", msg)
			return
		}
	}

	created, err := h.Service.CreateFarmer(c.Request.Context(), &models.Farmer{
		UserID:           userID,
		FarmName:         req.FarmName,
		Description:      req.Description,
		OrganicCertified: req.OrganicCertified,
		Location:         req.Location,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetFarmerHandler retrieves one farmer profile.
func (h *FarmerHandler) GetFarmerHandler(c *gin.Context) {
	f, err := h.Service.GetFarmer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if f == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
		return
	}

	c.JSON(http.StatusOK, f)
}

// ListFarmersHandler lists farmers, optionally filtered by organic
// certification or farm name.
func (h *FarmerHandler) ListFarmersHandler(c *gin.Context) {
	var (
		farmers []models.Farmer
		err     error
	)
	switch {
	case c.Query("organic") == "true":
		farmers, err = h.Service.GetOrganicFarmers(c.Request.Context())
	case c.Query("q") != "":
		farmers, err = h.Service.SearchByFarmName(c.Request.Context(), c.Query("q"))
	default:
		farmers, err = h.Service.ListFarmers(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"farmers": farmers})
}

// SearchByLocationHandler finds farmers near a point, sorted nearest first.
func (h *FarmerHandler) SearchByLocationHandler(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng must be a number"})
		return
	}
	if msg, ok := validateCoordinates(lat, lng); !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", msg)
		return
	}

	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radiusKm", "50"), 64)
	if err != nil || radiusKm <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "radiusKm must be a positive number"})
		return
	}

	nearby, err := h.Service.SearchByLocation(c.Request.Context(), lat, lng, radiusKm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": nearby})
}

// UpdateFarmerHandler updates the caller's own farmer profile.
func (h *FarmerHandler) UpdateFarmerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	existing, err := h.Service.GetFarmer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
		return
	}

	var req createFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Location != nil {
		if msg, ok := validateCoordinates(req.Location.Latitude, req.Location.Longitude); !ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", msg)
			return
		}
	}

	existing.FarmName = req.FarmName
	existing.Description = req.Description
	existing.OrganicCertified = req.OrganicCertified
	existing.Location = req.Location

	if err := h.Service.UpdateFarmer(c.Request.Context(), existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, existing)
}

// DeleteFarmerHandler removes the caller's own farmer profile.
func (h *FarmerHandler) DeleteFarmerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	existing, err := h.Service.GetFarmer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
		return
	}

	if err := h.Service.DeleteFarmer(c.Request.Context(), existing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Farmer deleted"})
}

// validateCoordinates checks decimal-degree bounds at the API boundary.
func validateCoordinates(lat, lng float64) (string, bool) {
	if lat < -90 || lat > 90 {
		return "latitude must be between -90 and 90", false
	}
	if lng < -180 || lng > 180 {
		return "longitude must be between -180 and 180", false
	}
	return "", true
}
