package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lawyer is the directory entry the lifecycle manager reads; this service
// never mutates it.
type Lawyer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	ProfileImage    string             `bson:"profileImage,omitempty" json:"profile_image,omitempty"`
	Specialization  string             `bson:"specialization,omitempty" json:"specialization,omitempty"`
	ConsultationFee int64              `bson:"consultationFee" json:"consultation_fee"`
	Currency        string             `bson:"currency" json:"currency"`
	Verified        bool               `bson:"verified" json:"verified"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
}
