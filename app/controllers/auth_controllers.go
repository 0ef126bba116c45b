package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/laundro/app/services"
	"github.com/shashiranjanraj/laundro/pkg/auth"
	"github.com/shashiranjanraj/laundro/pkg/logger"
	"github.com/shashiranjanraj/laundro/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login exchanges username/password for a session token. Bad credentials
// get a flat 401 with no detail, same as the old login dialog.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := c.service.Authenticate(body.Username, body.Password)
	if err != nil {
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if user == nil {
		response.Unauthorized(w)
		return
	}

	token, err := auth.GenerateToken(user.Username, user.Role)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token generation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Register creates a MEMBER account. All failures (blank field, taken
// username) collapse into one 422, matching the registration form.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, err := c.service.Register(body.Username, body.Password, body.FullName, body.Phone, body.Address)
	if err != nil {
		logger.WithCtx(r.Context()).Error("registration failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		response.Error(w, http.StatusUnprocessableEntity, "Registration failed: all fields are required and the username must be available")
		return
	}

	response.Created(w, map[string]string{"username": body.Username})
}
