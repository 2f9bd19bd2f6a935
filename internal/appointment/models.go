package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status of an appointment. Appointments are created pending and move to
// approved or rejected exactly once.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Snapshot is the denormalized patient or doctor display info captured at
// booking time. It is stored verbatim and never re-joined against the live
// profile, so old appointments keep the details they were booked with.
type Snapshot map[string]interface{}

func (s Snapshot) stringField(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// UserID returns the snapshot's userId field, if present.
func (s Snapshot) UserID() string { return s.stringField("userId") }

// Name returns the snapshot's name field, if present.
func (s Snapshot) Name() string { return s.stringField("name") }

// Appointment is a booking request against a doctor. Date is "YYYY-MM-DD",
// Time is a zero-padded 24h "HH:MM" clock value.
type Appointment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID     string             `bson:"userId" json:"userId"`
	DoctorID   string             `bson:"doctorId" json:"doctorId"`
	UserInfo   Snapshot           `bson:"userInfo" json:"userInfo"`
	DoctorInfo Snapshot           `bson:"doctorInfo" json:"doctorInfo"`
	Date       string             `bson:"date" json:"date"`
	Time       string             `bson:"time" json:"time"`
	Status     Status             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AvailabilityRequest asks whether a slot is free for a doctor.
type AvailabilityRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookRequest is the full booking payload.
type BookRequest struct {
	DoctorID   string   `json:"doctorId"`
	UserID     string   `json:"userId"`
	DoctorInfo Snapshot `json:"doctorInfo"`
	UserInfo   Snapshot `json:"userInfo"`
	Date       string   `json:"date"`
	Time       string   `json:"time"`
}

// StatusRequest is the doctor's decision on a pending appointment.
type StatusRequest struct {
	AppointmentID string `json:"appointmentId"`
	Status        Status `json:"status"`
}
