package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository handles DB operations for users, including the cascade over
// doctor and appointment documents that user deletion triggers.
type UserRepository struct {
	usersCollection        *mongo.Collection
	doctorsCollection      *mongo.Collection
	appointmentsCollection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		usersCollection:        db.Collection("users"),
		doctorsCollection:      db.Collection("doctors"),
		appointmentsCollection: db.Collection("appointments"),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.usersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var user User
	err = r.usersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*User, error) {
	cursor, err := r.usersCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []*User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.usersCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("Email already registered")
		}
		return err
	}
	return nil
}

// SetDoctorFlag flips the isDoctor flag after an admin decision on a doctor
// application.
func (r *UserRepository) SetDoctorFlag(ctx context.Context, userID string, isDoctor bool) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("user not found")
	}
	update := bson.M{"$set": bson.M{"isDoctor": isDoctor, "updatedAt": time.Now()}}
	res, err := r.usersCollection.UpdateByID(ctx, oid, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

// DeleteUser removes a user and everything hanging off it: the doctor record
// keyed by the user id and the appointments booked against it.
func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("user not found")
	}
	if _, err := r.usersCollection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return err
	}
	if _, err := r.doctorsCollection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}
	if _, err := r.appointmentsCollection.DeleteMany(ctx, bson.M{"doctorId": userID}); err != nil {
		return err
	}
	return nil
}
