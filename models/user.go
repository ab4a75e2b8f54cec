package models

import "time"

// Account roles.
const (
	RolePatient      = "patient"
	RolePractitioner = "practitioner"
)

// User represents a patient or practitioner account. Both roles live in the
// same collection and are distinguished by Role.
type User struct {
	ID             string    `bson:"id" json:"id"`
	FullName       string    `bson:"full_name" json:"fullName"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	PhoneNumber    string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Role           string    `bson:"role" json:"role"`
	Specialization string    `bson:"specialization,omitempty" json:"specialization,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}

// Identity is a resolved caller: the output of token validation, consumed by
// services that need to know who is acting and in which role.
type Identity struct {
	ID   string
	Role string
}
