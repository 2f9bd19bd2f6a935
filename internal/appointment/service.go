package appointment

import (
	"context"
	"fmt"
	"time"

	"ClinicBook/internal/doctor"
	"ClinicBook/internal/notification"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Conflict window around a requested time. A booking roughly occupies the 30
// minutes before it, and slightly late starts are tolerated, so any existing
// appointment within [t-30m, t+15m] blocks the slot. The window slides with
// the requested time; slots are not aligned to a calendar grid.
const (
	leadMinutes  = 30
	trailMinutes = 15
	graceMinutes = 1
	lastMinute   = 23*60 + 59

	dateLayout = "2006-01-02"
)

type appointmentStore interface {
	CreateAppointment(ctx context.Context, appt *Appointment) error
	FindByID(ctx context.Context, id string) (*Appointment, error)
	CountConflicts(ctx context.Context, doctorID, date, fromClock, toClock string) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) error
	FindByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	FindApprovedByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	FindByUser(ctx context.Context, userID string) ([]*Appointment, error)
}

type doctorDirectory interface {
	FindByUserID(ctx context.Context, userID string) (*doctor.Doctor, error)
}

type mailbox interface {
	Notify(ctx context.Context, userID string, n notification.Notification) error
	Recipient(ctx context.Context, userID string) (*notification.Mailbox, error)
}

// AppointmentService implements slot availability checking, booking and the
// approve/reject transition.
type AppointmentService struct {
	store   appointmentStore
	doctors doctorDirectory
	mailbox mailbox
	log     *zap.Logger
}

func NewAppointmentService(repo *AppointmentRepository, doctors *doctor.DoctorRepository, mailbox *notification.NotificationService, log *zap.Logger) *AppointmentService {
	return &AppointmentService{store: repo, doctors: doctors, mailbox: mailbox, log: log}
}

// CheckAvailability reports whether the requested slot is free. It is
// read-only; booking is a separate call, so two clients can both see a free
// slot and race to book it. Closing that would take a uniqueness constraint
// on a derived time bucket, which would change the sliding-window semantics,
// so the behavior is kept and documented instead.
func (s *AppointmentService) CheckAvailability(ctx context.Context, req AvailabilityRequest) error {
	doc, err := s.doctors.FindByUserID(ctx, req.DoctorID)
	if err != nil {
		return err
	}
	if doc == nil {
		return doctor.ErrNotFound
	}

	requested, err := doctor.ParseClock(req.Time)
	if err != nil {
		return &BadRequestError{Msg: err.Error()}
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return &BadRequestError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)}
	}

	from, err := doctor.ParseClock(doc.FromTime)
	if err != nil {
		return err
	}
	to, err := doctor.ParseClock(doc.ToTime)
	if err != nil {
		return err
	}

	// One minute of grace on both working-hours bounds.
	if requested+graceMinutes < from || requested+graceMinutes > to {
		return &OutOfHoursError{
			From: doctor.Format12Hour(doc.FromTime),
			To:   doctor.Format12Hour(doc.ToTime),
		}
	}

	windowFrom := requested - leadMinutes
	if windowFrom < 0 {
		windowFrom = 0
	}
	windowTo := requested + trailMinutes
	if windowTo > lastMinute {
		windowTo = lastMinute
	}

	conflicts, err := s.store.CountConflicts(ctx, req.DoctorID, req.Date,
		doctor.FormatClock(windowFrom), doctor.FormatClock(windowTo))
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return ErrNotAvailable
	}
	return nil
}

// Book persists the appointment request and notifies the doctor. It does not
// re-check availability; the client is expected to have called
// CheckAvailability first. The appointment write is authoritative, the
// doctor's mailbox append is best-effort.
func (s *AppointmentService) Book(ctx context.Context, req BookRequest) (*Appointment, error) {
	if req.DoctorID == "" || req.UserID == "" {
		return nil, &BadRequestError{Msg: "doctorId and userId are required"}
	}
	if _, err := doctor.ParseClock(req.Time); err != nil {
		return nil, &BadRequestError{Msg: err.Error()}
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, &BadRequestError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)}
	}

	now := time.Now()
	appt := &Appointment{
		ID:         primitive.NewObjectID(),
		UserID:     req.UserID,
		DoctorID:   req.DoctorID,
		UserInfo:   req.UserInfo,
		DoctorInfo: req.DoctorInfo,
		Date:       req.Date,
		Time:       req.Time,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateAppointment(ctx, appt); err != nil {
		return nil, err
	}

	err := s.mailbox.Notify(ctx, req.DoctorInfo.UserID(), notification.Notification{
		Type:    notification.TypeNewAppointmentRequest,
		Message: fmt.Sprintf("A new appointment request has been made by %s", req.UserInfo.Name()),
		Data: map[string]interface{}{
			"name": req.UserInfo.Name(),
		},
		OnClickPath: "/doctor/appointments",
	})
	if err != nil {
		s.log.Warn("appointment request notification not delivered",
			zap.String("appointmentId", appt.ID.Hex()),
			zap.String("doctorUserId", req.DoctorInfo.UserID()),
			zap.Error(err))
	}
	return appt, nil
}

// ChangeStatus moves a pending appointment to approved or rejected and
// notifies the patient. Both outcomes are terminal. Approving does not touch
// other pending requests in the same window; that is left to the doctor.
func (s *AppointmentService) ChangeStatus(ctx context.Context, req StatusRequest) error {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return ErrInvalidStatus
	}

	appt, err := s.store.FindByID(ctx, req.AppointmentID)
	if err != nil {
		return err
	}
	if appt == nil {
		return ErrNotFound
	}
	if appt.Status != StatusPending {
		return ErrAlreadyFinal
	}

	if err := s.store.UpdateStatus(ctx, appt.ID, req.Status); err != nil {
		return err
	}

	recipient, err := s.mailbox.Recipient(ctx, appt.UserID)
	if err != nil {
		s.log.Warn("appointment status notification not delivered",
			zap.String("appointmentId", req.AppointmentID),
			zap.String("userId", appt.UserID), zap.Error(err))
		return nil
	}
	err = s.mailbox.Notify(ctx, appt.UserID, notification.Notification{
		Type:    notification.TypeAppointmentStatusChange,
		Message: fmt.Sprintf("Your appointment status has been %s", req.Status),
		Data: map[string]interface{}{
			"name": recipient.Name,
		},
		OnClickPath: "/appointments",
	})
	if err != nil {
		s.log.Warn("appointment status notification not delivered",
			zap.String("appointmentId", req.AppointmentID),
			zap.String("userId", appt.UserID), zap.Error(err))
	}
	return nil
}

// DoctorQueue returns every appointment requested from the doctor.
func (s *AppointmentService) DoctorQueue(ctx context.Context, doctorUserID string) ([]*Appointment, error) {
	doc, err := s.doctors.FindByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, doctor.ErrNotFound
	}
	return s.store.FindByDoctor(ctx, doc.UserID)
}

// BookedForDoctor returns the doctor's approved appointments only.
func (s *AppointmentService) BookedForDoctor(ctx context.Context, doctorUserID string) ([]*Appointment, error) {
	return s.store.FindApprovedByDoctor(ctx, doctorUserID)
}

// ForUser returns the appointments a patient has requested.
func (s *AppointmentService) ForUser(ctx context.Context, userID string) ([]*Appointment, error) {
	return s.store.FindByUser(ctx, userID)
}
