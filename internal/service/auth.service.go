package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/learnhub/course-enroll/internal/apperror"
	"github.com/learnhub/course-enroll/internal/model"
	"github.com/learnhub/course-enroll/internal/model/request"
	"github.com/learnhub/course-enroll/internal/repository"
	"github.com/learnhub/course-enroll/internal/token"
)

const bcryptCost = 10

// AuthResult is what register and login hand back: the identity payload that
// went into the token, plus the signed token itself.
type AuthResult struct {
	Payload model.JWTPayload
	Token   string
}

type AuthService struct {
	users  UserStore
	tokens *token.Service
}

func NewAuthService(users UserStore, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password and issues a
// token for it. Duplicate emails report a conflict whether caught by the
// pre-check or by the unique index.
func (s *AuthService) Register(
	ctx context.Context,
	req request.RegisterRequest,
) (*AuthResult, *apperror.Error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperror.New(apperror.KindConflict, "User already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		zap.L().Error("User lookup failed during register", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		zap.L().Error("Password hashing failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique index turns the loser into a duplicate-key error.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.New(apperror.KindConflict, "User already exists")
		}
		zap.L().Error("User insert failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	identity := model.Identity{ID: id.Hex(), Name: user.Name, Email: user.Email}
	signed, err := s.tokens.Issue(identity)
	if err != nil {
		zap.L().Error("Token issuance failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	zap.L().Info("User registered", zap.String("userId", identity.ID))
	return &AuthResult{Payload: model.JWTPayload{User: identity}, Token: signed}, nil
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password produce the same generic message on purpose.
func (s *AuthService) Login(
	ctx context.Context,
	req request.LoginRequest,
) (*AuthResult, *apperror.Error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.New(apperror.KindInvalidCredentials, "Invalid email or password")
	}
	if err != nil {
		zap.L().Error("User lookup failed during login", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperror.New(apperror.KindInvalidCredentials, "Invalid email or password")
	}

	identity := model.Identity{ID: user.ID.Hex(), Name: user.Name, Email: user.Email}
	signed, err := s.tokens.Issue(identity)
	if err != nil {
		zap.L().Error("Token issuance failed", zap.Error(err))
		return nil, apperror.Internal(err)
	}

	zap.L().Info("User logged in", zap.String("userId", identity.ID))
	return &AuthResult{Payload: model.JWTPayload{User: identity}, Token: signed}, nil
}
