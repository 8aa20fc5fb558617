package application

import (
	"context"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/config"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
	"github.com/kmulatu/ezana-academy/pkg/mailer"
	mailtpl "github.com/kmulatu/ezana-academy/pkg/mailer/templates"
)

// TokenPair bundles the signed tokens with their expiries for the cookie layer.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AuthService signs accounts in and out. There is no credential check in
// this product; identity is derived from the submitted email, and the role
// comes from the email shape (a long-standing demo behavior).
type AuthService struct {
	data   *DataService
	jwt    *helpers.JWTManager
	gcs    *storage.Client
	bucket string
	rabbit *helpers.RabbitPublisher
	cfg    *config.Config
	logger *logrus.Logger
}

func NewAuthService(data *DataService, jwt *helpers.JWTManager, gcs *storage.Client, bucket string, rabbit *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{
		data:   data,
		jwt:    jwt,
		gcs:    gcs,
		bucket: bucket,
		rabbit: rabbit,
		cfg:    cfg,
		logger: logger,
	}
}

// MockIdentify maps an email to an identity. Emails containing "admin" get
// the admin account, "instructor" the instructor account, everything else a
// fresh student. JoinDate is left empty so first persistence stamps it.
func MockIdentify(email string) entity.User {
	u := entity.User{
		ID:     "u1",
		Name:   "John Doe",
		Email:  email,
		Role:   entity.RoleStudent,
		Avatar: entity.DefaultAvatar,
	}
	if strings.Contains(email, "admin") {
		u.ID = "adm1"
		u.Name = "Admin User"
		u.Role = entity.RoleAdmin
	}
	if strings.Contains(email, "instructor") {
		u.ID = "inst1"
		u.Name = "Jane Instructor"
		u.Role = entity.RoleInstructor
		u.Title = "Senior Developer"
	}
	return u
}

// Login resolves the identity for email, persists it as the session and in
// the directory, and issues a token pair. First-time directory entries get a
// welcome email queued; a degraded store never blocks the login itself.
func (s *AuthService) Login(ctx context.Context, email string) (entity.User, TokenPair, bool, error) {
	users, degraded := s.data.GetUsers(ctx)
	known := false
	for _, u := range users {
		if u.Email == email {
			known = true
			break
		}
	}

	user, d := s.data.SetSessionUser(ctx, MockIdentify(email))
	degraded = degraded || d

	access, aexp, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return entity.User{}, TokenPair{}, degraded, err
	}
	refresh, rexp, err := s.jwt.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return entity.User{}, TokenPair{}, degraded, err
	}

	if !known {
		s.queueWelcomeEmail(ctx, user)
	}

	pair := TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}
	return user, pair, degraded, nil
}

// Refresh validates the refresh token and issues a new pair.
func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	access, aexp, err := s.jwt.GenerateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.jwt.GenerateRefreshToken(claims.UserID, claims.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout(ctx context.Context) bool {
	return s.data.Logout(ctx)
}

// UploadAvatar stores a new profile image and applies it to the account.
func (s *AuthService) UploadAvatar(ctx context.Context, userID, contentType string, r io.Reader) (entity.User, bool, error) {
	if s.gcs == nil || s.bucket == "" {
		return entity.User{}, false, ErrUploadsDisabled
	}
	url, err := helpers.UploadAvatar(ctx, s.gcs, s.bucket, userID, contentType, r)
	if err != nil {
		return entity.User{}, false, err
	}
	user, degraded := s.data.UpdateUser(ctx, entity.User{ID: userID, Avatar: url})
	return user, degraded, nil
}

func (s *AuthService) queueWelcomeEmail(ctx context.Context, user entity.User) {
	if s.rabbit == nil || !s.cfg.MailSendEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       user.Email,
		Template: mailtpl.Welcome,
		Data: map[string]any{
			"Name":        user.Name,
			"AcademyName": s.cfg.AcademyName,
			"City":        s.cfg.AcademyCity,
		},
	}
	if err := s.rabbit.PublishJSON(ctx, job); err != nil {
		s.logger.WithError(err).WithField("email", user.Email).Warn("welcome email publish failed")
	}
}
