package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleLawyer UserRole = "lawyer"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Role         UserRole           `bson:"role" json:"role"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"profile_image,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
}
