package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles accepted by the user endpoints.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleAgent      = "user"
)

func ValidRole(r string) bool {
	return r == RoleSuperadmin || r == RoleAdmin || r == RoleAgent
}

type User struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Username     string        `json:"username"     bson:"username"`
	PasswordHash string        `json:"-"            bson:"password_hash"`
	Role         string        `json:"role"         bson:"role"`
	CompanyID    bson.ObjectID `json:"companyId"    bson:"company_id,omitempty"`
	Name         string        `json:"name"         bson:"name"`
	Email        string        `json:"email"        bson:"email,omitempty"`
	Phone        string        `json:"phone"        bson:"phone,omitempty"`
	AvatarURL    string        `json:"avatarUrl"    bson:"avatar_url,omitempty"`
	Disabled     bool          `json:"disabled"     bson:"disabled"`
	CreatedAt    time.Time     `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt"    bson:"updated_at"`
}
