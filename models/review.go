package models

import "time"

type Review struct {
	ReviewID  string    `json:"reviewId" bson:"reviewId"`
	PackageID string    `json:"packageId" bson:"packageId"`
	UserID    string    `json:"userId" bson:"userId"`
	Author    string    `json:"author" bson:"author"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
