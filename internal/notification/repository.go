package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository mutates the mailbox lists embedded in user documents.
type NotificationRepository struct {
	usersCollection *mongo.Collection
}

// NewNotificationRepository creates a new repository for mailbox operations.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{usersCollection: db.Collection("users")}
}

// Mailbox loads the mailbox view of a user by id.
func (r *NotificationRepository) Mailbox(ctx context.Context, userID string) (*Mailbox, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	var box Mailbox
	err = r.usersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&box)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

// AdminMailbox loads the mailbox of the admin user.
func (r *NotificationRepository) AdminMailbox(ctx context.Context) (*Mailbox, error) {
	var box Mailbox
	err := r.usersCollection.FindOne(ctx, bson.M{"isAdmin": true}).Decode(&box)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &box, nil
}

// Append pushes a notification to the tail of a user's unseen list.
func (r *NotificationRepository) Append(ctx context.Context, userID primitive.ObjectID, n Notification) error {
	update := bson.M{
		"$push": bson.M{"unseenNotifications": n},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.usersCollection.UpdateByID(ctx, userID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SaveLists overwrites both notification lists of a user.
func (r *NotificationRepository) SaveLists(ctx context.Context, userID primitive.ObjectID, unseen, seen []Notification) error {
	update := bson.M{
		"$set": bson.M{
			"unseenNotifications": unseen,
			"seenNotifications":   seen,
			"updatedAt":           time.Now(),
		},
	}
	res, err := r.usersCollection.UpdateByID(ctx, userID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
