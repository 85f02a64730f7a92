package models

import "time"

type TourPackage struct {
	PackageID   string    `json:"packageId" bson:"packageId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	Days        int       `json:"days" bson:"days"`
	Price       float64   `json:"price" bson:"price"`
	Rating      float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	Hotels      []string  `json:"hotels,omitempty" bson:"hotels,omitempty"`
	Gallery     []string  `json:"gallery,omitempty" bson:"gallery,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Guide struct {
	GuideID    string    `json:"guideId" bson:"guideId"`
	Name       string    `json:"name" bson:"name"`
	Speciality string    `json:"speciality,omitempty" bson:"speciality,omitempty"`
	Languages  []string  `json:"languages,omitempty" bson:"languages,omitempty"`
	Rating     float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	PerDay     float64   `json:"perDay" bson:"perDay"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Photo      string    `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
