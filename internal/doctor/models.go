package doctor

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status of a doctor application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusBlocked  Status = "blocked"
)

// Doctor is a doctor profile linked to a user account via UserID. FromTime
// and ToTime are clock-of-day values in zero-padded 24h "HH:MM" form.
type Doctor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID             string             `bson:"userId" json:"userId"`
	Prefix             string             `bson:"prefix" json:"prefix"`
	FullName           string             `bson:"fullName" json:"fullName"`
	Email              string             `bson:"email" json:"email"`
	PhoneNumber        string             `bson:"phoneNumber" json:"phoneNumber"`
	Website            string             `bson:"website,omitempty" json:"website,omitempty"`
	Address            string             `bson:"address" json:"address"`
	Specialization     string             `bson:"specialization" json:"specialization"`
	Experience         string             `bson:"experience" json:"experience"`
	FeePerConsultation float64            `bson:"feePerConsultation" json:"feePerConsultation"`
	FromTime           string             `bson:"fromTime" json:"fromTime"`
	ToTime             string             `bson:"toTime" json:"toTime"`
	Status             Status             `bson:"status" json:"status"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ApplyRequest is the doctor application form.
type ApplyRequest struct {
	UserID             string  `json:"userId"`
	Prefix             string  `json:"prefix"`
	FullName           string  `json:"fullName"`
	Email              string  `json:"email"`
	PhoneNumber        string  `json:"phoneNumber"`
	Website            string  `json:"website"`
	Address            string  `json:"address"`
	Specialization     string  `json:"specialization"`
	Experience         string  `json:"experience"`
	FeePerConsultation float64 `json:"feePerConsultation"`
	FromTime           string  `json:"fromTime"`
	ToTime             string  `json:"toTime"`
}

// UpdateRequest carries the editable profile fields.
type UpdateRequest struct {
	Prefix             string  `json:"prefix"`
	FullName           string  `json:"fullName"`
	PhoneNumber        string  `json:"phoneNumber"`
	Website            string  `json:"website"`
	Address            string  `json:"address"`
	Specialization     string  `json:"specialization"`
	Experience         string  `json:"experience"`
	FeePerConsultation float64 `json:"feePerConsultation"`
	FromTime           string  `json:"fromTime"`
	ToTime             string  `json:"toTime"`
}

// StatusRequest is the admin decision on a doctor application.
type StatusRequest struct {
	DoctorID string `json:"doctorId"`
	Status   Status `json:"status"`
	UserID   string `json:"userId"`
}
