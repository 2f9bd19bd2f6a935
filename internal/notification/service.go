package notification

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserNotFound is returned when the mailbox owner does not exist.
var ErrUserNotFound = errors.New("user not found")

type mailboxStore interface {
	Mailbox(ctx context.Context, userID string) (*Mailbox, error)
	AdminMailbox(ctx context.Context) (*Mailbox, error)
	Append(ctx context.Context, userID primitive.ObjectID, n Notification) error
	SaveLists(ctx context.Context, userID primitive.ObjectID, unseen, seen []Notification) error
}

// NotificationService owns the per-user mailbox: producers append unseen
// entries, owners mark them seen or clear them.
type NotificationService struct {
	store mailboxStore
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo *NotificationRepository) *NotificationService {
	return &NotificationService{store: repo}
}

// Recipient resolves a user's mailbox view, typically to read the owner's
// name for a notification message.
func (s *NotificationService) Recipient(ctx context.Context, userID string) (*Mailbox, error) {
	box, err := s.store.Mailbox(ctx, userID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrUserNotFound
	}
	return box, nil
}

// Notify appends a notification to the tail of the user's unseen list.
// Entries are kept in insertion order and are never deduplicated.
func (s *NotificationService) Notify(ctx context.Context, userID string, n Notification) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.store.Append(ctx, oid, n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// NotifyAdmin appends a notification to the admin user's unseen list.
func (s *NotificationService) NotifyAdmin(ctx context.Context, n Notification) error {
	box, err := s.store.AdminMailbox(ctx)
	if err != nil {
		return err
	}
	if box == nil {
		return ErrUserNotFound
	}
	return s.store.Append(ctx, box.ID, n)
}

// MarkAllSeen moves every unseen notification to the seen list and empties
// the unseen list. The seen list is replaced, not merged: whatever was seen
// before is dropped. That mirrors the behavior the clients were built
// against, so it stays.
func (s *NotificationService) MarkAllSeen(ctx context.Context, userID string) (*Mailbox, error) {
	box, err := s.store.Mailbox(ctx, userID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrUserNotFound
	}

	box.SeenNotifications = box.UnseenNotifications
	box.UnseenNotifications = []Notification{}
	if box.SeenNotifications == nil {
		box.SeenNotifications = []Notification{}
	}

	if err := s.store.SaveLists(ctx, box.ID, box.UnseenNotifications, box.SeenNotifications); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteAll unconditionally clears both notification lists.
func (s *NotificationService) DeleteAll(ctx context.Context, userID string) (*Mailbox, error) {
	box, err := s.store.Mailbox(ctx, userID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, ErrUserNotFound
	}

	box.UnseenNotifications = []Notification{}
	box.SeenNotifications = []Notification{}

	if err := s.store.SaveLists(ctx, box.ID, box.UnseenNotifications, box.SeenNotifications); err != nil {
		return nil, err
	}
	return box, nil
}
