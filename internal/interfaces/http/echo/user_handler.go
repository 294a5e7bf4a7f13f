package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/user-registry/internal/application/user"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
)

type UserUseCases struct {
	List   app.ListUsers
	Get    app.GetUserByID
	Create app.CreateUser
	Update app.UpdateUser
	Delete app.DeleteUser
}

type UserHandler struct {
	useCases UserUseCases
}

type userRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	PANNumber   string `json:"pan_number"`
}

func (r userRequest) toInput() app.UserFieldsInput {
	return app.UserFieldsInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PANNumber:   r.PANNumber,
	}
}

func NewUserHandler(useCases UserUseCases) *UserHandler {
	return &UserHandler{useCases: useCases}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	out, err := h.useCases.List.Execute(c.Request().Context())
	if err != nil {
		return h.internalError(c, err, "failed to list users")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	out, err := h.useCases.Get.Execute(c.Request().Context(), app.GetUserByIDInput{
		ID: c.Param("id"),
	})
	if err != nil {
		return h.userError(c, err, "failed to get user")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "bad_request", "invalid request body")
	}

	out, err := h.useCases.Create.Execute(c.Request().Context(), app.CreateUserInput{
		UserFieldsInput: req.toInput(),
	})
	if err != nil {
		if errors.Is(err, app.ErrEmailAlreadyExists) {
			return writeError(c, http.StatusConflict, "email_exists", "Email already exists")
		}
		return h.userError(c, err, "failed to create user")
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "bad_request", "invalid request body")
	}

	out, err := h.useCases.Update.Execute(c.Request().Context(), app.UpdateUserInput{
		ID:              c.Param("id"),
		UserFieldsInput: req.toInput(),
	})
	if err != nil {
		if errors.Is(err, app.ErrEmailAlreadyExists) {
			return writeError(c, http.StatusConflict, "email_exists", "Email already exists for another user")
		}
		return h.userError(c, err, "failed to update user")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	err := h.useCases.Delete.Execute(c.Request().Context(), app.DeleteUserInput{
		ID: c.Param("id"),
	})
	if err != nil {
		return h.userError(c, err, "failed to delete user")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: map[string]string{"message": "User deleted"}})
}

// userError maps the errors shared by the single-record endpoints.
func (h *UserHandler) userError(c echo.Context, err error, fallback string) error {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeErrorDetails(c, http.StatusBadRequest, "validation_failed", "Validation failed", verr.Violations)
	case errors.Is(err, app.ErrInvalidUserID):
		return writeError(c, http.StatusBadRequest, "invalid_user_id", "id must be a valid UUID")
	case errors.Is(err, app.ErrUserNotFound):
		return writeError(c, http.StatusNotFound, "not_found", "user not found")
	}
	return h.internalError(c, err, fallback)
}

func (h *UserHandler) internalError(c echo.Context, err error, message string) error {
	logging.FromContext(c.Request().Context(), logrus.StandardLogger()).WithError(err).Error(message)
	return writeError(c, http.StatusInternalServerError, "internal_error", message)
}
