package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmmarket/models"
	"farmmarket/services/farmer"
	"farmmarket/utils"

	"github.com/gin-gonic/gin"
)

type stubFarmerService struct {
	nearby []farmer.NearbyFarmer
}

func (s *stubFarmerService) CreateFarmer(ctx context.Context, f *models.Farmer) (*models.Farmer, error) {
	return f, nil
}

func (s *stubFarmerService) GetFarmer(ctx context.Context, id string) (*models.Farmer, error) {
	return nil, nil
}

func (s *stubFarmerService) GetFarmerByUserID(ctx context.Context, userID string) (*models.Farmer, error) {
	return nil, nil
}

func (s *stubFarmerService) UpdateFarmer(ctx context.Context, f *models.Farmer) error { return nil }

func (s *stubFarmerService) DeleteFarmer(ctx context.Context, id string) error { return nil }

func (s *stubFarmerService) ListFarmers(ctx context.Context) ([]models.Farmer, error) {
	return nil, nil
}

func (s *stubFarmerService) GetOrganicFarmers(ctx context.Context) ([]models.Farmer, error) {
	return nil, nil
}

func (s *stubFarmerService) SearchByFarmName(ctx context.Context, query string) ([]models.Farmer, error) {
	return nil, nil
}

func (s *stubFarmerService) SearchByLocation(ctx context.Context, lat, lng, radiusKm float64) ([]farmer.NearbyFarmer, error) {
	return s.nearby, nil
}

func searchFarmers(svc farmer.FarmerService, query string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := NewFarmerHandler(svc)
	router := gin.New()
	router.GET("/api/farmers/search", h.SearchByLocationHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/farmers/search?"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchByLocationRejectsOutOfRangeCoordinates(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		details string
	}{
		{"latitude too high", "lat=91&lng=10", "latitude must be between -90 and 90"},
		{"latitude too low", "lat=-90.5&lng=10", "latitude must be between -90 and 90"},
		{"longitude too high", "lat=10&lng=180.5", "longitude must be between -180 and 180"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := searchFarmers(&stubFarmerService{}, tc.query)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}

			var resp utils.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Message != "Invalid coordinates" {
				t.Errorf("message = %q, want %q", resp.Message, "Invalid coordinates")
			}
			if resp.Details != tc.details {
				t.Errorf("details = %q, want %q", resp.Details, tc.details)
			}
		})
	}
}

func TestSearchByLocationAcceptsBoundaryCoordinates(t *testing.T) {
	svc := &stubFarmerService{nearby: []farmer.NearbyFarmer{
		{Farmer: models.Farmer{ID: "f1", FarmName: "Green Acres"}, DistanceKm: 3.2},
	}}

	w := searchFarmers(svc, "lat=90&lng=-180&radiusKm=25")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Results []farmer.NearbyFarmer `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Farmer.ID != "f1" {
		t.Fatalf("results = %+v, want the stubbed farmer", resp.Results)
	}
}
