package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/voteflow/backend/internal/client"
	"github.com/voteflow/backend/internal/dto"
	"github.com/voteflow/backend/internal/model"
	"github.com/voteflow/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// dummyHash keeps the bcrypt comparison on the login path even when no user
// exists for the email, so lookup misses are not distinguishable by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (model.User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (string, model.User, error)
	LoginFederated(ctx context.Context, idToken string) (string, model.User, error)
	ValidateToken(ctx context.Context, token string) (model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	userRepository repository.UserRepository
	authClient     client.AuthClient
	mailer         client.Mailer
	config         dto.Config
}

func newAuthService(userRepository repository.UserRepository, authClient client.AuthClient, mailer client.Mailer, config dto.Config) AuthService {
	return &authService{
		userRepository: userRepository,
		authClient:     authClient,
		mailer:         mailer,
		config:         config,
	}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if name == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: name, email and password are required", dto.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return model.User{}, fmt.Errorf("%w: password must be at least %d characters", dto.ErrInvalidInput, minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Verified:     !a.config.RequireVerification,
	}

	if a.config.RequireVerification {
		expiry := time.Now().UTC().Add(a.config.CodeTTL)
		user.VerificationCode = uuid.NewString()
		user.VerificationExpiresAt = &expiry
	}

	created, err := a.userRepository.Create(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	logrus.Infof("Registered user %d (%s)", created.ID, created.Email)

	if created.VerificationCode != "" {
		a.sendDetached(func(ctx context.Context) error {
			return a.mailer.SendVerificationCode(ctx, created.Email, created.VerificationCode)
		})
	}

	return created, nil
}

func (a *authService) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return fmt.Errorf("%w: unknown account", dto.ErrInvalidCode)
		}
		return err
	}

	if user.Verified {
		return nil
	}
	if user.VerificationCode == "" || user.VerificationCode != code {
		return fmt.Errorf("%w: code mismatch", dto.ErrInvalidCode)
	}
	if user.VerificationExpiresAt == nil || time.Now().UTC().After(*user.VerificationExpiresAt) {
		return fmt.Errorf("%w: code expired", dto.ErrInvalidCode)
	}

	user.Verified = true
	user.VerificationCode = ""
	user.VerificationExpiresAt = nil

	_, err = a.userRepository.Save(ctx, user)
	return err
}

func (a *authService) Login(ctx context.Context, email, password string) (string, model.User, error) {
	user, err := a.userRepository.GetByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil && user.PasswordHash != "" {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return "", model.User{}, fmt.Errorf("%w: no account for email", dto.ErrNotFound)
		}
		return "", model.User{}, err
	}
	if user.PasswordHash == "" || compareErr != nil {
		return "", model.User{}, fmt.Errorf("%w: password mismatch", dto.ErrInvalidCredentials)
	}

	if a.config.RequireVerification && !user.Verified {
		return "", model.User{}, fmt.Errorf("%w: email not verified", dto.ErrNotVerified)
	}

	token, err := a.issueToken(user)
	if err != nil {
		return "", model.User{}, err
	}

	return token, user, nil
}

func (a *authService) LoginFederated(ctx context.Context, idToken string) (string, model.User, error) {
	assertion, err := a.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", model.User{}, fmt.Errorf("%w: %v", dto.ErrFederatedAuthFailed, err)
	}

	email, ok := assertion.Claims["email"].(string)
	if !ok || email == "" {
		return "", model.User{}, fmt.Errorf("%w: email claim missing", dto.ErrFederatedAuthFailed)
	}
	name, _ := assertion.Claims["name"].(string)
	picture, _ := assertion.Claims["picture"].(string)

	user, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, dto.ErrNotFound) {
			return "", model.User{}, err
		}
		// First federated login: create the identity transparently,
		// pre-verified by the external provider.
		uid := assertion.UID
		user, err = a.userRepository.Create(ctx, model.User{
			Name:        name,
			Email:       email,
			FirebaseUID: &uid,
			PictureURL:  picture,
			Verified:    true,
		})
		if err != nil {
			return "", model.User{}, err
		}
		logrus.Infof("Created federated user %d (%s)", user.ID, user.Email)
	} else if user.FirebaseUID == nil || name != user.Name || picture != user.PictureURL {
		if user.FirebaseUID == nil {
			uid := assertion.UID
			user.FirebaseUID = &uid
			user.Verified = true
		}
		if name != "" {
			user.Name = name
		}
		if picture != "" {
			user.PictureURL = picture
		}

		user, err = a.userRepository.Save(ctx, user)
		if err != nil {
			return "", model.User{}, err
		}
	}

	token, err := a.issueToken(user)
	if err != nil {
		return "", model.User{}, err
	}

	return token, user, nil
}

func (a *authService) ValidateToken(ctx context.Context, token string) (model.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.config.TokenSecret), nil
	})
	if err != nil || !parsed.Valid {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrNotAuthorized, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, fmt.Errorf("%w: unexpected claims", dto.ErrNotAuthorized)
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return model.User{}, fmt.Errorf("%w: subject claim missing", dto.ErrNotAuthorized)
	}

	user, err := a.userRepository.GetByID(ctx, uint(sub))
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.User{}, fmt.Errorf("%w: unknown subject", dto.ErrNotAuthorized)
		}
		return model.User{}, err
	}

	return user, nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			// Do not leak which emails have accounts.
			return nil
		}
		return err
	}

	expiry := time.Now().UTC().Add(a.config.CodeTTL)
	user.ResetCode = uuid.NewString()
	user.ResetExpiresAt = &expiry

	saved, err := a.userRepository.Save(ctx, user)
	if err != nil {
		return err
	}

	a.sendDetached(func(ctx context.Context) error {
		return a.mailer.SendResetCode(ctx, saved.Email, saved.ResetCode)
	})

	return nil
}

func (a *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", dto.ErrInvalidInput, minPasswordLength)
	}

	user, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return fmt.Errorf("%w: unknown account", dto.ErrInvalidCode)
		}
		return err
	}

	if user.ResetCode == "" || user.ResetCode != code {
		return fmt.Errorf("%w: code mismatch", dto.ErrInvalidCode)
	}
	if user.ResetExpiresAt == nil || time.Now().UTC().After(*user.ResetExpiresAt) {
		return fmt.Errorf("%w: code expired", dto.ErrInvalidCode)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user.PasswordHash = string(hashed)
	user.ResetCode = ""
	user.ResetExpiresAt = nil

	_, err = a.userRepository.Save(ctx, user)
	return err
}

func (a *authService) issueToken(user model.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(a.config.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.config.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return signed, nil
}

// sendDetached hands a mail delivery off to a goroutine. Delivery failure is
// logged and never propagated to the operation that triggered it.
func (a *authService) sendDetached(send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := send(ctx); err != nil {
			logrus.Errorf("Error delivering mail: %v", err)
		}
	}()
}
