package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"disease-predictor-gateway/internal/backend"
	"disease-predictor-gateway/internal/session"
	"disease-predictor-gateway/internal/utils"
)

// AuthHandler drives registration and login against the backend and owns
// the only two writes to the session store: the login success path and the
// logout action.
type AuthHandler struct {
	Store  session.Store
	Client *backend.Client
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store session.Store, client *backend.Client) *AuthHandler {
	return &AuthHandler{Store: store, Client: client}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register forwards a registration to the backend. On success the user is
// pointed at the login entry point; no session is created here.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.Client.Register(c.Request.Context(), backend.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		upstreamError(c, err, "Registration failed")
		return
	}

	utils.Created(c, "Registration successful. Please log in.", gin.H{
		"id":       resp.ID,
		"redirect": "/login",
	})
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates against the backend and persists the returned
// identity. The session becomes observable only once it is fully populated.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	current, err := h.Client.Login(c.Request.Context(), backend.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		upstreamError(c, err, "Login failed")
		return
	}

	if err := h.Store.Save(current); err != nil {
		if errors.Is(err, session.ErrPartialSession) {
			utils.BadGateway(c, "Login response did not include a complete identity")
			return
		}
		utils.InternalServerError(c, "Failed to persist session: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"user":     current,
		"redirect": "/dashboard",
	})
}

// Logout destroys the persisted session. The store notifies dependents so
// no stale authenticated view state survives.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Store.Clear(); err != nil {
		utils.InternalServerError(c, "Failed to clear session: "+err.Error())
		return
	}

	utils.Success(c, "Logout successful", gin.H{"redirect": "/login"})
}

// LoginPage is the unauthenticated entry point the route guard redirects to.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	utils.Success(c, "Please log in to continue", gin.H{
		"login":    "/auth/login",
		"register": "/auth/register",
	})
}
