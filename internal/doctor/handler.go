package doctor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DoctorHandler struct {
	service *DoctorService
}

func NewDoctorHandler(service *DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	if err := h.service.Apply(c.Request().Context(), req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Doctor account applied successfully",
	})
}

func (h *DoctorHandler) GetAll(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch doctors"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "All doctors fetched successfully",
		"data":    doctors,
	})
}

func (h *DoctorHandler) GetApproved(c echo.Context) error {
	doctors, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch doctors"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "All approved doctors fetched successfully",
		"data":    doctors,
	})
}

func (h *DoctorHandler) Get(c echo.Context) error {
	doc, err := h.service.GetByUserID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Doctor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch doctor"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Doctor fetched successfully",
		"data":    doc,
	})
}

func (h *DoctorHandler) Update(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	doc, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Doctor not found"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Doctor updated successfully",
		"data":    doc,
	})
}

// ChangeStatus is the admin decision endpoint for doctor applications.
func (h *DoctorHandler) ChangeStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	doctors, err := h.service.ChangeStatus(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "Doctor not found"})
		case errors.Is(err, ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to change doctor status"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  true,
		"message": "Doctor status changed successfully",
		"data":    doctors,
	})
}
