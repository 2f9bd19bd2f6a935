package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ClinicBook/internal/auth"
	"ClinicBook/internal/config"
	"ClinicBook/internal/notification"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorStore interface {
	CreateDoctor(ctx context.Context, doc *Doctor) error
	FindByEmail(ctx context.Context, email string) (*Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*Doctor, error)
	FindAll(ctx context.Context) ([]*Doctor, error)
	FindByStatus(ctx context.Context, status Status) ([]*Doctor, error)
	UpdateByUserID(ctx context.Context, userID string, req UpdateRequest) (*Doctor, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Doctor, error)
}

type userFlags interface {
	SetDoctorFlag(ctx context.Context, userID string, isDoctor bool) error
}

type mailbox interface {
	Notify(ctx context.Context, userID string, n notification.Notification) error
	NotifyAdmin(ctx context.Context, n notification.Notification) error
	Recipient(ctx context.Context, userID string) (*notification.Mailbox, error)
}

type emailSender interface {
	SendEmail(to, subject, body string) error
}

// DoctorService owns the doctor application and approval workflow.
type DoctorService struct {
	repo    doctorStore
	users   userFlags
	mailbox mailbox
	email   emailSender
	log     *zap.Logger
}

func NewDoctorService(repo *DoctorRepository, users *auth.UserRepository, mailbox *notification.NotificationService, email *config.EmailService, log *zap.Logger) *DoctorService {
	return &DoctorService{repo: repo, users: users, mailbox: mailbox, email: email, log: log}
}

// Apply files a doctor application. The profile starts out pending and the
// admin is notified.
func (s *DoctorService) Apply(ctx context.Context, req ApplyRequest) error {
	if req.UserID == "" || req.FullName == "" || req.Email == "" {
		return errors.New("userId, fullName and email are required")
	}
	from, err := ParseClock(req.FromTime)
	if err != nil {
		return err
	}
	to, err := ParseClock(req.ToTime)
	if err != nil {
		return err
	}
	if from >= to {
		return errors.New("fromTime must be before toTime")
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyApplied
	}

	now := time.Now()
	doc := &Doctor{
		ID:                 primitive.NewObjectID(),
		UserID:             req.UserID,
		Prefix:             req.Prefix,
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Website:            req.Website,
		Address:            req.Address,
		Specialization:     req.Specialization,
		Experience:         req.Experience,
		FeePerConsultation: req.FeePerConsultation,
		FromTime:           req.FromTime,
		ToTime:             req.ToTime,
		Status:             StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.CreateDoctor(ctx, doc); err != nil {
		return err
	}

	// The admin mailbox append is best-effort: the application itself is
	// already on record.
	err = s.mailbox.NotifyAdmin(ctx, notification.Notification{
		Type:    notification.TypeNewDoctorRequest,
		Message: fmt.Sprintf("%s has requested to join as a doctor.", doc.FullName),
		Data: map[string]interface{}{
			"doctorId": doc.ID.Hex(),
			"name":     doc.FullName,
		},
		OnClickPath: "/admin/doctors",
	})
	if err != nil {
		s.log.Warn("failed to notify admin of doctor application",
			zap.String("doctorId", doc.ID.Hex()), zap.Error(err))
	}
	return nil
}

// ChangeStatus records the admin decision, updates the user's doctor flag and
// notifies the applicant. Returns the refreshed doctor list.
func (s *DoctorService) ChangeStatus(ctx context.Context, req StatusRequest) ([]*Doctor, error) {
	if req.Status != StatusApproved && req.Status != StatusBlocked {
		return nil, ErrInvalidStatus
	}

	doc, err := s.repo.UpdateStatus(ctx, req.DoctorID, req.Status)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	if err := s.users.SetDoctorFlag(ctx, req.UserID, req.Status == StatusApproved); err != nil {
		s.log.Warn("failed to update doctor flag",
			zap.String("userId", req.UserID), zap.Error(err))
	}

	recipient, err := s.mailbox.Recipient(ctx, req.UserID)
	if err != nil {
		s.log.Warn("doctor status notification not delivered",
			zap.String("userId", req.UserID), zap.Error(err))
	} else {
		err = s.mailbox.Notify(ctx, req.UserID, notification.Notification{
			Type:    notification.TypeNewDoctorRequestChanged,
			Message: fmt.Sprintf("Your doctor request has been %s", req.Status),
			Data: map[string]interface{}{
				"name":     recipient.Name,
				"doctorId": req.UserID,
			},
			OnClickPath: "/notifications",
		})
		if err != nil {
			s.log.Warn("doctor status notification not delivered",
				zap.String("userId", req.UserID), zap.Error(err))
		}
	}

	if err := s.email.SendEmail(doc.Email,
		fmt.Sprintf("Doctor application %s", req.Status),
		fmt.Sprintf("<p>Hello %s, your doctor request has been %s.</p>", doc.FullName, req.Status),
	); err != nil {
		s.log.Warn("doctor status email not delivered",
			zap.String("email", doc.Email), zap.Error(err))
	}

	return s.repo.FindAll(ctx)
}

func (s *DoctorService) GetByUserID(ctx context.Context, userID string) (*Doctor, error) {
	doc, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (s *DoctorService) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.FindAll(ctx)
}

func (s *DoctorService) ListApproved(ctx context.Context) ([]*Doctor, error) {
	return s.repo.FindByStatus(ctx, StatusApproved)
}

// Update applies self-service profile edits by user id. Omitted fields keep
// their stored values; working hours can only change as a valid pair.
func (s *DoctorService) Update(ctx context.Context, userID string, req UpdateRequest) (*Doctor, error) {
	if req.FromTime != "" || req.ToTime != "" {
		if req.FromTime == "" || req.ToTime == "" {
			return nil, errors.New("fromTime and toTime must be updated together")
		}
		from, err := ParseClock(req.FromTime)
		if err != nil {
			return nil, err
		}
		to, err := ParseClock(req.ToTime)
		if err != nil {
			return nil, err
		}
		if from >= to {
			return nil, errors.New("fromTime must be before toTime")
		}
	}

	doc, err := s.repo.UpdateByUserID(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}
