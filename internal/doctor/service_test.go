package doctor

import (
	"context"
	"errors"
	"testing"

	"ClinicBook/internal/notification"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeDoctorStore struct {
	docs []*Doctor
}

func (f *fakeDoctorStore) CreateDoctor(ctx context.Context, doc *Doctor) error {
	for _, d := range f.docs {
		if d.Email == doc.Email {
			return ErrAlreadyApplied
		}
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDoctorStore) FindByEmail(ctx context.Context, email string) (*Doctor, error) {
	for _, d := range f.docs {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorStore) FindByUserID(ctx context.Context, userID string) (*Doctor, error) {
	for _, d := range f.docs {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorStore) FindAll(ctx context.Context) ([]*Doctor, error) {
	return f.docs, nil
}

func (f *fakeDoctorStore) FindByStatus(ctx context.Context, status Status) ([]*Doctor, error) {
	out := []*Doctor{}
	for _, d := range f.docs {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

// Mirrors the repository: only fields present in the payload are written.
func (f *fakeDoctorStore) UpdateByUserID(ctx context.Context, userID string, req UpdateRequest) (*Doctor, error) {
	for _, d := range f.docs {
		if d.UserID == userID {
			if req.FullName != "" {
				d.FullName = req.FullName
			}
			if req.FromTime != "" {
				d.FromTime = req.FromTime
			}
			if req.ToTime != "" {
				d.ToTime = req.ToTime
			}
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorStore) UpdateStatus(ctx context.Context, id string, status Status) (*Doctor, error) {
	for _, d := range f.docs {
		if d.ID.Hex() == id {
			d.Status = status
			return d, nil
		}
	}
	return nil, nil
}

type fakeUserFlags struct {
	flags map[string]bool
}

func (f *fakeUserFlags) SetDoctorFlag(ctx context.Context, userID string, isDoctor bool) error {
	f.flags[userID] = isDoctor
	return nil
}

type fakeMailbox struct {
	admin *notification.Mailbox
	boxes map[string]*notification.Mailbox
}

func (f *fakeMailbox) Notify(ctx context.Context, userID string, n notification.Notification) error {
	box, ok := f.boxes[userID]
	if !ok {
		return notification.ErrUserNotFound
	}
	box.UnseenNotifications = append(box.UnseenNotifications, n)
	return nil
}

func (f *fakeMailbox) NotifyAdmin(ctx context.Context, n notification.Notification) error {
	f.admin.UnseenNotifications = append(f.admin.UnseenNotifications, n)
	return nil
}

func (f *fakeMailbox) Recipient(ctx context.Context, userID string) (*notification.Mailbox, error) {
	box, ok := f.boxes[userID]
	if !ok {
		return nil, notification.ErrUserNotFound
	}
	return box, nil
}

type fakeEmail struct {
	sent []string
}

func (f *fakeEmail) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, to)
	return nil
}

const applicantUserID = "64f000000000000000000010"

func newTestService(existing ...*Doctor) (*DoctorService, *fakeDoctorStore, *fakeUserFlags, *fakeMailbox, *fakeEmail) {
	store := &fakeDoctorStore{docs: existing}
	users := &fakeUserFlags{flags: make(map[string]bool)}
	mailbox := &fakeMailbox{
		admin: &notification.Mailbox{Name: "Admin", IsAdmin: true},
		boxes: map[string]*notification.Mailbox{
			applicantUserID: {Name: "John Smith"},
		},
	}
	email := &fakeEmail{}
	service := &DoctorService{
		repo:    store,
		users:   users,
		mailbox: mailbox,
		email:   email,
		log:     zap.NewNop(),
	}
	return service, store, users, mailbox, email
}

func applyRequest() ApplyRequest {
	return ApplyRequest{
		UserID:             applicantUserID,
		Prefix:             "Dr.",
		FullName:           "John Smith",
		Email:              "dr.smith@example.com",
		PhoneNumber:        "+15550100",
		Address:            "12 Clinic Road",
		Specialization:     "Cardiology",
		Experience:         "8 years",
		FeePerConsultation: 120,
		FromTime:           "09:00",
		ToTime:             "17:00",
	}
}

func TestApplyCreatesPendingAndNotifiesAdmin(t *testing.T) {
	service, store, _, mailbox, _ := newTestService()

	if err := service.Apply(context.Background(), applyRequest()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if len(store.docs) != 1 {
		t.Fatalf("expected 1 doctor, got %d", len(store.docs))
	}
	if store.docs[0].Status != StatusPending {
		t.Fatalf("expected pending, got %s", store.docs[0].Status)
	}

	unseen := mailbox.admin.UnseenNotifications
	if len(unseen) != 1 {
		t.Fatalf("expected 1 admin notification, got %d", len(unseen))
	}
	if unseen[0].Type != notification.TypeNewDoctorRequest {
		t.Fatalf("unexpected notification type %q", unseen[0].Type)
	}
	if unseen[0].Message != "John Smith has requested to join as a doctor." {
		t.Fatalf("unexpected message %q", unseen[0].Message)
	}
}

func TestApplyRejectsDuplicateEmail(t *testing.T) {
	service, _, _, _, _ := newTestService(&Doctor{
		ID:     primitive.NewObjectID(),
		UserID: "other",
		Email:  "dr.smith@example.com",
	})

	err := service.Apply(context.Background(), applyRequest())
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplyRejectsBadWorkingHours(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
	}{
		{
			name: "inverted",
			from: "17:00",
			to:   "09:00",
		},
		{
			name: "equal",
			from: "09:00",
			to:   "09:00",
		},
		{
			name: "malformed",
			from: "9am",
			to:   "17:00",
		},
	}

	for _, c := range cases {
		service, _, _, _, _ := newTestService()
		req := applyRequest()
		req.FromTime = c.from
		req.ToTime = c.to
		if err := service.Apply(context.Background(), req); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestUpdateKeepsOmittedWorkingHours(t *testing.T) {
	doc := &Doctor{
		ID:       primitive.NewObjectID(),
		UserID:   applicantUserID,
		FullName: "John Smith",
		FromTime: "09:00",
		ToTime:   "17:00",
		Status:   StatusApproved,
	}
	service, _, _, _, _ := newTestService(doc)

	updated, err := service.Update(context.Background(), applicantUserID, UpdateRequest{
		FullName: "John A. Smith",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "John A. Smith" {
		t.Fatalf("expected name updated, got %q", updated.FullName)
	}
	if updated.FromTime != "09:00" || updated.ToTime != "17:00" {
		t.Fatalf("working hours changed by name-only update: %q-%q", updated.FromTime, updated.ToTime)
	}
}

func TestUpdateWorkingHoursValidation(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{
			name: "valid pair",
			from: "10:00",
			to:   "18:00",
		},
		{
			name:    "fromTime alone",
			from:    "10:00",
			wantErr: true,
		},
		{
			name:    "toTime alone",
			to:      "18:00",
			wantErr: true,
		},
		{
			name:    "inverted",
			from:    "18:00",
			to:      "10:00",
			wantErr: true,
		},
		{
			name:    "malformed",
			from:    "10am",
			to:      "18:00",
			wantErr: true,
		},
	}

	for _, c := range cases {
		doc := &Doctor{
			ID:       primitive.NewObjectID(),
			UserID:   applicantUserID,
			FromTime: "09:00",
			ToTime:   "17:00",
		}
		service, _, _, _, _ := newTestService(doc)

		updated, err := service.Update(context.Background(), applicantUserID, UpdateRequest{
			FromTime: c.from,
			ToTime:   c.to,
		})
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.name)
			}
			if doc.FromTime != "09:00" || doc.ToTime != "17:00" {
				t.Fatalf("%s: stored hours changed on rejected update: %q-%q", c.name, doc.FromTime, doc.ToTime)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: update: %v", c.name, err)
		}
		if updated.FromTime != c.from || updated.ToTime != c.to {
			t.Fatalf("%s: expected hours %q-%q, got %q-%q", c.name, c.from, c.to, updated.FromTime, updated.ToTime)
		}
	}
}

func TestChangeStatusApprove(t *testing.T) {
	doc := &Doctor{
		ID:       primitive.NewObjectID(),
		UserID:   applicantUserID,
		FullName: "John Smith",
		Email:    "dr.smith@example.com",
		Status:   StatusPending,
	}
	service, _, users, mailbox, email := newTestService(doc)

	doctors, err := service.ChangeStatus(context.Background(), StatusRequest{
		DoctorID: doc.ID.Hex(),
		Status:   StatusApproved,
		UserID:   applicantUserID,
	})
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if doc.Status != StatusApproved {
		t.Fatalf("expected approved, got %s", doc.Status)
	}
	if !users.flags[applicantUserID] {
		t.Fatal("expected isDoctor flag to be set")
	}
	if len(doctors) != 1 {
		t.Fatalf("expected refreshed doctor list, got %d", len(doctors))
	}

	unseen := mailbox.boxes[applicantUserID].UnseenNotifications
	if len(unseen) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(unseen))
	}
	if unseen[0].Type != notification.TypeNewDoctorRequestChanged {
		t.Fatalf("unexpected notification type %q", unseen[0].Type)
	}
	if unseen[0].Message != "Your doctor request has been approved" {
		t.Fatalf("unexpected message %q", unseen[0].Message)
	}

	if len(email.sent) != 1 || email.sent[0] != doc.Email {
		t.Fatalf("expected status email to %s, got %v", doc.Email, email.sent)
	}
}

func TestChangeStatusBlockClearsDoctorFlag(t *testing.T) {
	doc := &Doctor{
		ID:       primitive.NewObjectID(),
		UserID:   applicantUserID,
		FullName: "John Smith",
		Status:   StatusApproved,
	}
	service, _, users, _, _ := newTestService(doc)
	users.flags[applicantUserID] = true

	_, err := service.ChangeStatus(context.Background(), StatusRequest{
		DoctorID: doc.ID.Hex(),
		Status:   StatusBlocked,
		UserID:   applicantUserID,
	})
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if users.flags[applicantUserID] {
		t.Fatal("expected isDoctor flag to be cleared")
	}
}

func TestChangeStatusValidation(t *testing.T) {
	service, _, _, _, _ := newTestService()

	_, err := service.ChangeStatus(context.Background(), StatusRequest{
		DoctorID: primitive.NewObjectID().Hex(),
		Status:   StatusPending,
		UserID:   applicantUserID,
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	_, err = service.ChangeStatus(context.Background(), StatusRequest{
		DoctorID: primitive.NewObjectID().Hex(),
		Status:   StatusApproved,
		UserID:   applicantUserID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
