package api

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthService issues and validates session tokens for gateway accounts. It
// keeps an in-memory user store; the gateway is stateless with respect to
// the chain and accounts only gate the relay and websocket surfaces.
type AuthService struct {
	jwtSecret []byte
	users     map[string]*User
	mu        sync.RWMutex
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret []byte) *AuthService {
	return &AuthService{
		jwtSecret: jwtSecret,
		users:     make(map[string]*User),
	}
}

// Claims represents JWT claims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Address  string `json:"address"`
	Tier     string `json:"tier"`
	jwt.RegisteredClaims
}

// handleRegister handles gateway account registration
func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := ValidateAndBindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}

	if err := ValidateRegisterRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
		return
	}

	// Check if username already exists
	s.authService.mu.RLock()
	_, exists := s.authService.users[req.Username]
	s.authService.mu.RUnlock()

	if exists {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: "Username already exists",
			Code:  "USERNAME_TAKEN",
		})
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to process registration",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	user := &User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Address:      req.Address,
		Tier:         "free",
		CreatedAt:    time.Now().UTC(),
	}

	// Store user
	s.authService.mu.Lock()
	s.authService.users[req.Username] = user
	s.authService.mu.Unlock()

	if s.auditLogger != nil {
		s.auditLogger.LogAuthentication(c, user.Username, user.ID, "success", "registration")
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: "Registration successful",
		Data: gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"address":  user.Address,
		},
	})
}

// handleLogin handles gateway account login
func (s *Server) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := ValidateAndBindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}

	if err := ValidateLoginRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
		return
	}

	// Get user
	s.authService.mu.RLock()
	user, exists := s.authService.users[req.Username]
	s.authService.mu.RUnlock()

	// Generic error for both unknown user and bad password to prevent
	// username enumeration.
	if !exists {
		if s.auditLogger != nil {
			s.auditLogger.LogAuthentication(c, req.Username, "", "failure", "user not found")
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Invalid credentials",
			Code:  "INVALID_CREDENTIALS",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if s.auditLogger != nil {
			s.auditLogger.LogAuthentication(c, req.Username, user.ID, "failure", "invalid password")
		}
		if s.rateLimiter != nil {
			s.rateLimiter.RecordFailure(user.ID)
		}
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Invalid credentials",
			Code:  "INVALID_CREDENTIALS",
		})
		return
	}

	token, err := s.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to generate token",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if s.auditLogger != nil {
		s.auditLogger.LogAuthentication(c, user.Username, user.ID, "success", "login")
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		ExpiresIn: int64(tokenLifetime.Seconds()),
		Username:  user.Username,
		UserID:    user.ID,
		Address:   user.Address,
	})
}

// handleGetProfile returns the authenticated account
func (s *Server) handleGetProfile(c *gin.Context) {
	userID, username, address, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Unauthorized",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  userID,
		"username": username,
		"address":  address,
	})
}

// handleLinkAddress links or replaces the on-chain address of the
// authenticated account. Tokens issued before the change keep the old
// address until they expire.
func (s *Server) handleLinkAddress(c *gin.Context) {
	_, username, _, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "Unauthorized",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	var req struct {
		Address string `json:"address" binding:"required"`
	}
	if err := ValidateAndBindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: err.Error(),
			Code:    "INVALID_REQUEST",
		})
		return
	}

	if err := ValidateAddress(req.Address); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
		return
	}

	s.authService.mu.Lock()
	user, exists := s.authService.users[username]
	if exists {
		user.Address = req.Address
	}
	s.authService.mu.Unlock()

	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "Account not found",
			Code:  "NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Address linked",
		Data:    gin.H{"address": req.Address},
	})
}

// GenerateToken generates a JWT token for a user
func (as *AuthService) GenerateToken(user *User) (string, error) {
	expirationTime := time.Now().Add(tokenLifetime)

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Address:  user.Address,
		Tier:     user.Tier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "grid-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(as.jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (as *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return as.jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetUser retrieves a user by username
func (as *AuthService) GetUser(username string) (*User, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	user, exists := as.users[username]
	return user, exists
}

// GetUserByID retrieves a user by ID
func (as *AuthService) GetUserByID(userID string) (*User, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	for _, user := range as.users {
		if user.ID == userID {
			return user, true
		}
	}
	return nil, false
}
