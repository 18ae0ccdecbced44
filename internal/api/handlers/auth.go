package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/api/middleware"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     *CookieHelper
}

func NewAuthHandler(authService *service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// MeResponse deliberately has no json tags: the frontend consumes the
// capitalized keys.
type MeResponse struct {
	Email    string
	Username string
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Email, username and password are required")
		return
	}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			respondMessage(w, http.StatusBadRequest, "Username already exists")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Registration does not log the user in.
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("User registered successfully"))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Username/email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondMessage(w, http.StatusUnauthorized, "Invalid username/email or password")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.cookies.SetAuthCookie(w, result.Token)

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Username: result.User.Username,
		Email:    result.User.Email,
		Token:    result.Token,
	})
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearAuthCookie(w)
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	// The token may outlive the account, so the user is re-fetched.
	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, MeResponse{
		Email:    user.Email,
		Username: user.Username,
	})
}
