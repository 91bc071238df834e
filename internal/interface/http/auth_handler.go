package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/session"
	"github.com/campusboard/bulletin-api/pkg/helpers"
	"github.com/campusboard/bulletin-api/pkg/mailer"
	"github.com/campusboard/bulletin-api/pkg/response"
	"github.com/campusboard/bulletin-api/pkg/validation"
)

// AuthHandler owns the signup/login/logout/status endpoints and the session
// cookie lifecycle around them.
type AuthHandler struct {
	Svc         *application.AuthService
	Sessions    session.Store
	Logger      *logrus.Logger
	Cookies     *helpers.Manager
	SessionTTL  time.Duration
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthHandler(svc *application.AuthService, sessions session.Store, logger *logrus.Logger,
	cookies *helpers.Manager, sessionTTL time.Duration, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthHandler {
	return &AuthHandler{
		Svc:         svc,
		Sessions:    sessions,
		Logger:      logger,
		Cookies:     cookies,
		SessionTTL:  sessionTTL,
		Pub:         pub,
		MailEnabled: mailEnabled,
	}
}

type signupRequest struct {
	Name           string `json:"name" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	InvitationCode string `json:"invitationCode" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid signup payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		InvitationCode: req.InvitationCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidInvitation):
			response.Error(c, http.StatusForbidden, "Invalid invitation code. Signup restricted.")
		case errors.Is(err, application.ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, "Username already taken.")
		default:
			h.Logger.WithError(err).WithField("username", req.Username).Error("signup failed")
			response.Error(c, http.StatusInternalServerError, "Error creating user!")
		}
		return
	}

	h.enqueueWelcome(c, u.Email, u.Name, u.Username)
	response.Message(c, http.StatusCreated, "User registered successfully")
}

// enqueueWelcome publishes the welcome email job; failures only log, signup
// has already committed.
func (h *AuthHandler) enqueueWelcome(c *gin.Context, email, name, username string) {
	if !h.MailEnabled || h.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": name, "Username": username},
	}
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).WithField("username", username).Warn("failed to enqueue welcome email")
	}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid login payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, "User not found!")
		case errors.Is(err, application.ErrIncorrectPassword):
			h.Logger.WithFields(logrus.Fields{"username": req.Username, "ip": clientIP(c)}).Info("failed login attempt")
			response.Error(c, http.StatusBadRequest, "Incorrect password!")
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	sessUser := session.User{ID: u.ID, Username: u.Username}
	token, err := h.Sessions.Create(c.Request.Context(), sessUser)
	if err != nil {
		h.Logger.WithError(err).WithField("username", u.Username).Error("failed to create session")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	h.Cookies.SetSession(c, token, h.SessionTTL)

	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "user": sessUser})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := helpers.SessionToken(c)
	if token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Error("failed to destroy session")
			response.Error(c, http.StatusInternalServerError, "Error logging out!")
			return
		}
	}
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "Logout successful!")
}

// Status GET /api/auth/status — never errors, reflects session presence.
func (h *AuthHandler) Status(c *gin.Context) {
	token := helpers.SessionToken(c)
	if token != "" {
		if sess, err := h.Sessions.Get(c.Request.Context(), token); err == nil {
			c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": sess.User})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": false})
}

// AdminDashboard GET /api/auth/admindashboard — auth-gated probe.
func (h *AuthHandler) AdminDashboard(c *gin.Context) {
	response.Message(c, http.StatusOK, "Welcome to the admin dashboard")
}
