package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type AuthUserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.User, error)
}

type AuthService struct {
	users    AuthUserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users AuthUserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: 24 * time.Hour}
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if u == nil || u.Disabled {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	if !u.CompanyID.IsZero() {
		claims["company_id"] = u.CompanyID.Hex()
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, signed, nil
}

// ChangePassword re-hashes after verifying the old password.
func (s *AuthService) ChangePassword(ctx context.Context, userID bson.ObjectID, oldPassword, newPassword string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.users.Update(ctx, userID, bson.M{"password_hash": string(hash)})
	return err
}
