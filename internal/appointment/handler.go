package appointment

import (
	"errors"
	"net/http"

	"ClinicBook/internal/doctor"

	"github.com/labstack/echo/v4"
)

type AppointmentHandler struct {
	service *AppointmentService
}

func NewAppointmentHandler(service *AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// CheckAvailability validates a requested slot against the doctor's working
// hours and existing bookings.
func (h *AppointmentHandler) CheckAvailability(c echo.Context) error {
	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	if err := h.service.CheckAvailability(c.Request().Context(), req); err != nil {
		var outOfHours *OutOfHoursError
		var badRequest *BadRequestError
		switch {
		case errors.Is(err, doctor.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Doctor not found"})
		case errors.Is(err, ErrNotAvailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Appointment not available"})
		case errors.As(err, &outOfHours):
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": outOfHours.Error()})
		case errors.As(err, &badRequest):
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": badRequest.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to check availability"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Appointment available",
	})
}

func (h *AppointmentHandler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	if _, err := h.service.Book(c.Request().Context(), req); err != nil {
		var badRequest *BadRequestError
		if errors.As(err, &badRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": badRequest.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to book appointment"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Appointment booked successfully.",
	})
}

func (h *AppointmentHandler) ChangeStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	if err := h.service.ChangeStatus(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Appointment not found"})
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrAlreadyFinal):
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to change appointment status"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Appointment status changed successfully",
	})
}

func (h *AppointmentHandler) DoctorAppointments(c echo.Context) error {
	appointments, err := h.service.DoctorQueue(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Doctor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch appointments"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Appointments fetched successfully.",
		"data":    appointments,
	})
}

func (h *AppointmentHandler) BookedAppointments(c echo.Context) error {
	appointments, err := h.service.BookedForDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch appointments"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Appointments fetched successfully",
		"data":    appointments,
	})
}

func (h *AppointmentHandler) UserAppointments(c echo.Context) error {
	appointments, err := h.service.ForUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch appointments"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Appointments fetched successfully.",
		"data":    appointments,
	})
}
