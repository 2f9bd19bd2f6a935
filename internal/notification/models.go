package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types produced by the booking and approval flows.
const (
	TypeNewDoctorRequest        = "new-doctor-request"
	TypeNewDoctorRequestChanged = "new-doctor-request-changed"
	TypeNewAppointmentRequest   = "new-appointment-request"
	TypeAppointmentStatusChange = "appointment-status-changed"
)

// Notification is a single mailbox entry embedded in a user document.
type Notification struct {
	Type        string                 `bson:"type" json:"type"`               // Event tag, one of the Type* constants
	Message     string                 `bson:"message" json:"message"`         // Human-readable message shown in the client
	Data        map[string]interface{} `bson:"data" json:"data"`               // Small structured payload (doctor id, name)
	OnClickPath string                 `bson:"onClickPath" json:"onClickPath"` // Client navigation target
}

// Mailbox is the notification-bearing view of a user document. The password
// field is deliberately absent so handlers can return it verbatim.
type Mailbox struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	IsAdmin             bool               `bson:"isAdmin" json:"isAdmin"`
	IsDoctor            bool               `bson:"isDoctor" json:"isDoctor"`
	UnseenNotifications []Notification     `bson:"unseenNotifications" json:"unseenNotifications"`
	SeenNotifications   []Notification     `bson:"seenNotifications" json:"seenNotifications"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
