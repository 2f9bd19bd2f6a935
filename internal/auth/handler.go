package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	service *UserService
}

func NewAuthHandler(service *UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	err := h.service.RegisterUser(c.Request().Context(), req)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, ErrEmailTaken) {
			code = http.StatusConflict
		}
		return c.JSON(code, echo.Map{"status": false, "message": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": true, "message": "User registered successfully"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "Invalid request"})
	}

	token, err := h.service.AuthenticateUser(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": true, "message": "Logged in successfully", "data": token})
}

// VerifyUser echoes the authenticated user back to the client, which uses it
// to hydrate its session on reload.
func (h *AuthHandler) VerifyUser(c echo.Context) error {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Invalid or missing token"})
	}

	user, err := h.service.GetUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "User not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "User verified successfully.",
		"data":    user,
	})
}

func (h *AuthHandler) GetAllUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch users"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "Users fetched successfully.",
		"data":    users,
	})
}

func (h *AuthHandler) GetUser(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": false, "message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "User fetched successfully.",
		"data":    user,
	})
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "Failed to delete user"})
	}
	return c.NoContent(http.StatusNoContent)
}
