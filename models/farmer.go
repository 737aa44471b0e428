package models

import "time"

// Location is a geographic point attached to a farmer profile.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address,omitempty" json:"address,omitempty"`
	City      string  `bson:"city,omitempty" json:"city,omitempty"`
	Region    string  `bson:"region,omitempty" json:"region,omitempty"`
}

// Farmer is a seller profile on the marketplace.
type Farmer struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	FarmName         string    `bson:"farmName" json:"farmName"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	OrganicCertified bool      `bson:"organicCertified" json:"organicCertified"`
	Location         *Location `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
