package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripnest/tourism-platform/internal/api/metrics"
	"github.com/tripnest/tourism-platform/internal/api/middleware"
	"github.com/tripnest/tourism-platform/internal/core/domain"
	"github.com/tripnest/tourism-platform/internal/core/ports"
)

// SessionCookie describes the cookie that carries the session token. The
// cookie is readable from browser scripts.
type SessionCookie struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      SessionCookie
}

func NewAuthHandler(authService ports.AuthService, cookie SessionCookie) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "jwt"
	}
	return &AuthHandler{authService: authService, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required_without=Username"`
	Username string `json:"username" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Role    domain.Role `json:"role"`
}

type signupRequest struct {
	Email             string `json:"email"`
	Username          string `json:"username"`
	Password          string `json:"password" validate:"required"`
	Name              string `json:"name"`
	MobileNumber      string `json:"mobile_number"`
	Nationality       string `json:"nationality"`
	DateOfBirth       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Job               string `json:"job"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0"`
	PreviousWork      string `json:"previous_work"`
	Website           string `json:"website" validate:"omitempty,url"`
	Hotline           string `json:"hotline"`
	CompanyProfile    string `json:"company_profile"`
	Description       string `json:"description"`
}

type staffRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// Login authenticates an account of any role from its email or username.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identifier := req.Email
	if strings.TrimSpace(identifier) == "" {
		identifier = req.Username
	}

	res, err := h.authService.Login(c.Request().Context(), identifier, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "rejected"
		}
		metrics.LoginAttemptsTotal.WithLabelValues("none", result).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues(string(res.Account.Role), "success").Inc()

	c.SetCookie(h.sessionCookie(res.Token, res.ExpiresAt))
	return c.JSON(http.StatusOK, loginResponse{
		Message: "logged in successfully",
		Role:    res.Account.Role,
	})
}

// Signup registers a self-service account (tourist, tour-guide, advertiser
// or seller).
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        role  path      string         true  "Account role"  Enums(tourist, tour-guide, advertiser, seller)
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  map[string]domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /sign-up/{role} [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return err
	}
	if !role.SelfService() {
		return domain.ErrInvalidRole
	}

	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile := domain.Profile{
		Name:              req.Name,
		MobileNumber:      req.MobileNumber,
		Nationality:       req.Nationality,
		Job:               req.Job,
		YearsOfExperience: req.YearsOfExperience,
		PreviousWork:      req.PreviousWork,
		Website:           req.Website,
		Hotline:           req.Hotline,
		CompanyProfile:    req.CompanyProfile,
		Description:       req.Description,
	}
	if req.DateOfBirth != "" {
		// format already checked by the validator
		dob, _ := time.Parse(time.DateOnly, req.DateOfBirth)
		profile.DateOfBirth = &dob
	}

	acc, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Role:     role,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Profile:  profile,
	})
	if err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusCreated, map[string]*domain.Account{string(role): acc})
}

// CreateStaff creates an admin or tourism-governor account. Admin only.
//
// @Summary      Create staff account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path      string        true  "Staff role"  Enums(admin, tourism-governor)
// @Param        body  body      staffRequest  true  "Credentials"
// @Success      201   {object}  map[string]domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /admin/accounts/{role} [post]
func (h *AuthHandler) CreateStaff(c echo.Context) error {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return err
	}
	if role.SelfService() {
		return domain.ErrInvalidRole
	}

	var req staffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	acc, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Role:     role,
		Username: req.Username,
		Password: req.Password,
		Profile:  domain.Profile{Name: req.Name},
	})
	if err != nil {
		return err
	}
	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()

	return c.JSON(http.StatusCreated, map[string]*domain.Account{string(role): acc})
}

// Logout revokes the current session token and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      200
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c, h.cookie.Name)
	revoked, err := h.authService.Logout(c.Request().Context(), token)
	if err != nil {
		return err
	}
	if revoked {
		metrics.SessionsRevokedTotal.Inc()
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusOK)
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
