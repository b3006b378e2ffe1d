package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"

	"renovation-marketplace-api/internal/common"
	"renovation-marketplace-api/internal/entity"
	"renovation-marketplace-api/internal/service"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(public *echo.Group, protected *echo.Group, services *service.Services, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}

	public.POST("/signup", h.Signup)
	public.POST("/login", h.Login)
	protected.POST("/logout", h.Logout)

	return h
}

type signupInput struct {
	Username        string `json:"username" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=100"`
	Password        string `json:"password" validate:"required,min=8,max=100"`
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Role            string `json:"role" validate:"required,oneof=user contractor"`
	Phone           string `json:"phone" validate:"max=30"`
	NationalId      string `json:"nationalId" validate:"max=30"`
	Specialization  string `json:"specialization" validate:"max=100"`
	ExperienceYears int    `json:"experienceYears" validate:"gte=0,lte=80"`
	LicenseNumber   string `json:"licenseNumber" validate:"max=100"`
}

// /signup
func (h *authRoutesHandler) Signup(c echo.Context) error {
	var input signupInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.SignupInput{
		Username: input.Username, Email: input.Email, Password: input.Password,
		FirstName: input.FirstName, LastName: input.LastName, Role: input.Role,
		Phone: input.Phone, NationalId: input.NationalId,
		Specialization: input.Specialization, ExperienceYears: input.ExperienceYears,
		LicenseNumber: input.LicenseNumber,
	}

	auth, err := h.authService.Signup(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, auth); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUsernameTaken:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Username is already taken"}); e != nil {
			return e
		}
	case service.ErrInvalidRole:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Role must be " + common.RoleHomeowner + " or " + common.RoleContractor}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type loginInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// /login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	auth, err := h.authService.Login(c.Request().Context(), input.Username, input.Password)
	if err == nil {
		if e := c.JSON(http.StatusOK, auth); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCredentials:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid username or password"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /logout
func (h *authRoutesHandler) Logout(c echo.Context) error {
	session := sessionFromContext(c)
	if err := h.authService.Logout(c.Request().Context(), session); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}
