package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of user roles.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored role string onto a Role. Anything other than "admin"
// is a patient.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RolePatient
}

// User is a portal account, keyed by email.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the user may perform administrative actions.
func (u *User) IsAdmin() bool {
	return u != nil && ParseRole(string(u.Role)) == RoleAdmin
}

// UserUpsertRequest carries the profile fields a client may set on PUT /user/:email.
// Role is deliberately absent; it is only changed through the admin endpoint.
type UserUpsertRequest struct {
	Name string `json:"name"`
}

// UpsertResult mirrors the outcome of an update-or-insert.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}
