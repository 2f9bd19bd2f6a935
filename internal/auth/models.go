package auth

import (
	"time"

	"ClinicBook/internal/notification"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the single role a user acts as. The stored document keeps the
// isAdmin/isDoctor flags for compatibility with existing data; Role collapses
// them back to the one role the client renders.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID                  primitive.ObjectID          `bson:"_id,omitempty" json:"_id"`
	Name                string                      `bson:"name" json:"name"`
	Email               string                      `bson:"email" json:"email"`
	Password            string                      `bson:"password" json:"-"`
	IsAdmin             bool                        `bson:"isAdmin" json:"isAdmin"`
	IsDoctor            bool                        `bson:"isDoctor" json:"isDoctor"`
	UnseenNotifications []notification.Notification `bson:"unseenNotifications" json:"unseenNotifications"`
	SeenNotifications   []notification.Notification `bson:"seenNotifications" json:"seenNotifications"`
	CreatedAt           time.Time                   `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time                   `bson:"updatedAt" json:"updatedAt"`
}

// Role resolves the flag pair to a single role. Admin wins over doctor,
// matching the exclusive rendering the client assumes.
func (u *User) Role() Role {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsDoctor:
		return RoleDoctor
	default:
		return RolePatient
	}
}

// UserSummary is the projection returned by the admin user listing.
type UserSummary struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CreatedAt time.Time          `json:"createdAt"`
	IsAdmin   bool               `json:"isAdmin"`
	IsDoctor  bool               `json:"isDoctor"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
