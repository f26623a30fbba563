package handlers

import (
	"errors"
	"net/http"

	"github.com/qbyten/site-api/internal/auth"
	"github.com/qbyten/site-api/internal/models"
	repo "github.com/qbyten/site-api/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate an admin and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !storeReady(w, userRepo != nil) {
		return
	}

	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeStoreError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{
		Token: token,
		User:  UserInfo{ID: user.ID, Username: user.Username},
	})
}

// RegisterHandler bootstraps the first admin account. It stays closed
// unless explicitly enabled through configuration; leaving it open on a
// deployed site hands out admin accounts.
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if !registrationEnabled {
		writeError(w, http.StatusForbidden, "registration is disabled")
		return
	}
	if !storeReady(w, userRepo != nil) {
		return
	}

	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if creds.Username == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}
	if len(creds.Username) < 3 {
		writeError(w, http.StatusBadRequest, "Username must be at least 3 characters")
		return
	}
	if len(creds.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	_, err = userRepo.CreateUser(models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "Username already exists")
			return
		}
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MutationResult{
		Success: true,
		Message: "Admin user created successfully",
	})
}

// VerifyHandler reports whether the presented token is still a valid
// session. The token is self-describing; no store access is needed.
func VerifyHandler(w http.ResponseWriter, r *http.Request) {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		writeJSON(w, http.StatusUnauthorized, VerifyResult{Valid: false})
		return
	}

	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		if auth.IsExpired(err) {
			writeJSON(w, http.StatusUnauthorized, VerifyResult{Valid: false, Error: "Token expired"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, VerifyResult{Valid: false, Error: "Invalid token"})
		return
	}

	id, _ := claims["sub"].(float64)
	username, _ := claims["username"].(string)
	writeJSON(w, http.StatusOK, VerifyResult{
		Valid: true,
		User:  &UserInfo{ID: int(id), Username: username},
	})
}
