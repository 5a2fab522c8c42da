package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

const tokenTTL = 24 * time.Hour

// AuthService manages accounts and session tokens over the users collection.
// The email-uniqueness check before creation is best effort: the store offers
// no transactional guarantee against a concurrent registration.
type AuthService struct {
	store     *datastore.Client
	jwtSecret string
}

// NewAuthService creates an AuthService signing tokens with jwtSecret.
func NewAuthService(store *datastore.Client, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret}
}

var _ IAuthService = (*AuthService)(nil)

// Register creates an account and returns the user with a session token,
// logging the user in immediately.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	filter := url.Values{}
	filter.Set("email", email)
	var existing []models.User
	if err := s.store.List(ctx, datastore.Users, filter, &existing); err != nil {
		return nil, "", err
	}
	if len(existing) > 0 {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := nowUTC()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DisplayName:  strings.TrimSpace(req.FirstName + " " + req.LastName),
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var stored models.User
	if err := s.store.Create(ctx, datastore.Users, user, &stored); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(&stored)
	if err != nil {
		return nil, "", err
	}
	return &stored, token, nil
}

// Login verifies credentials and returns the user with a fresh token. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	filter := url.Values{}
	filter.Set("email", strings.ToLower(strings.TrimSpace(email)))
	var users []models.User
	if err := s.store.List(ctx, datastore.Users, filter, &users); err != nil {
		return nil, "", err
	}
	if len(users) == 0 {
		return nil, "", ErrInvalidCredentials
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetUserByID fetches an account by id.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.store.Get(ctx, datastore.Users, userID, &user)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the user's profile fields. Password, id and the admin
// flag cannot be changed through this path.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.User, error) {
	patch := map[string]any{"updatedAt": nowUTC()}
	if req.FirstName != "" {
		patch["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		patch["lastName"] = req.LastName
	}
	if req.DisplayName != "" {
		patch["displayName"] = req.DisplayName
	}

	var user models.User
	err := s.store.Patch(ctx, datastore.Users, userID, patch, &user)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	patch := map[string]any{
		"passwordHash": string(hash),
		"updatedAt":    nowUTC(),
	}
	return s.store.Patch(ctx, datastore.Users, userID, patch, nil)
}
