// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/middleware"
	"p9e.in/pixcel/models"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// Register bootstraps an admin account. Kept open the way the original
// studio deployment had it; fronted by the same unique-email constraint.
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error hashing password")
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	u := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") {
			respondError(w, http.StatusBadRequest, "Email already registered")
		} else {
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	token, err := middleware.GenerateToken(u.ID.String(), u.Role, u.Name, u.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "couldn't create token")
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"token":   token,
		"user":    userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	var u models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&u).Error; err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := middleware.GenerateToken(u.ID.String(), u.Role, u.Name, u.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "couldn't create token")
		return
	}
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"token":   token,
		"user":    userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

// GetCurrentUser returns the account behind the presented token
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var u models.User
	if err := config.DB.First(&u, "id = ?", claims.UserID).Error; err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondData(w, http.StatusOK, userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
}
