package auth

import (
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studymentor/internal/apperror"
	"studymentor/internal/models"
)

// tokenTTL is the fixed validity window of issued bearer tokens. There is
// no server-side revocation; logout is client-side token discard.
const tokenTTL = 30 * time.Minute

type Service struct {
	store     Store
	jwtSecret []byte
}

func NewService(store Store, jwtSecret string) *Service {
	return &Service{
		store:     store,
		jwtSecret: []byte(jwtSecret),
	}
}

func (s *Service) Register(email, password, fullName string) (string, error) {
	if _, err := s.store.GetUserByEmail(email); err == nil {
		return "", apperror.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateUser(user); err != nil {
		// The unique index on email backs the lookup above; a concurrent
		// duplicate surfaces here instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperror.Conflict("Email already registered")
		}
		log.Printf("Error creating user: %v", err)
		return "", err
	}

	return s.signToken(user.ID)
}

func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return "", apperror.Unauthorized("Incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.Unauthorized("Incorrect email or password")
	}

	return s.signToken(user.ID)
}

// Authenticate resolves a bearer token to its stored user. Malformed,
// expired, and dangling-subject tokens all fail the same way.
func (s *Service) Authenticate(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}

	user, err := s.store.GetUserByID(subject)
	if err != nil {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}
	return user, nil
}

func (s *Service) signToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
