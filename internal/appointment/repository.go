package appointment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository handles DB operations for appointments.
type AppointmentRepository struct {
	appointmentsCollection *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{appointmentsCollection: db.Collection("appointments")}
}

func (r *AppointmentRepository) CreateAppointment(ctx context.Context, appt *Appointment) error {
	_, err := r.appointmentsCollection.InsertOne(ctx, appt)
	return err
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var appt Appointment
	err = r.appointmentsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

// CountConflicts counts non-rejected appointments for the doctor on the
// given date whose time falls inside [fromClock, toClock] inclusive. The
// zero-padded "HH:MM" encoding makes the string range behave like a time
// range.
func (r *AppointmentRepository) CountConflicts(ctx context.Context, doctorID, date, fromClock, toClock string) (int64, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     bson.M{"$gte": fromClock, "$lte": toClock},
		"status":   bson.M{"$ne": StatusRejected},
	}
	return r.appointmentsCollection.CountDocuments(ctx, filter)
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.appointmentsCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) FindByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentRepository) FindApprovedByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "status": StatusApproved})
}

func (r *AppointmentRepository) FindByUser(ctx context.Context, userID string) ([]*Appointment, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *AppointmentRepository) find(ctx context.Context, filter bson.M) ([]*Appointment, error) {
	cursor, err := r.appointmentsCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	appointments := []*Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
