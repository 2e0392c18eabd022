package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthUserReader defines read-only operations for users.
type AuthUserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// AuthUserWriter defines write operations for users.
type AuthUserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// ReferralProcessor records signup-time redemptions.
type ReferralProcessor interface {
	ProcessReferral(ctx context.Context, code string, referredUserID uuid.UUID) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader    AuthUserReader
	writer    AuthUserWriter
	jwt       JWTGenerator
	referrals ReferralProcessor
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader, writer AuthUserWriter, jwt JWTGenerator, referrals ReferralProcessor) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		referrals: referrals,
	}
}

// Register registers a new user. A non-empty referralCode triggers automatic
// redemption for the new user; redemption failures are logged and never block
// signup.
func (svc *AuthService) Register(ctx context.Context, username, password, email, referralCode string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	if referralCode != "" && svc.referrals != nil {
		if err := svc.referrals.ProcessReferral(ctx, referralCode, userID); err != nil {
			logger.Log.Errorw("failed to process signup referral", "userID", userID, "code", referralCode, "err", err)
		}
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
