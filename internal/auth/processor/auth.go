package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=mocks_test.go -package=processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// AdminStore defines the database operations required by AuthProcessor
type AdminStore interface {
	GetAdminProfile(ctx context.Context, userID uuid.UUID) (store.AdminProfile, error)
	CreateAdminProfile(ctx context.Context, userID uuid.UUID, email string, fullName *string) (store.AdminProfile, error)
}

// AuthConfig describes how tokens minted by the external auth provider are validated
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string

	// AutoProvision creates an admin profile the first time a valid user reaches the admin API
	AutoProvision bool
}

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidSubject  = errors.New("token subject is not a valid user id")
	ErrAdminNotFound   = errors.New("admin profile not found")
	ErrAdminInactive   = errors.New("admin profile is inactive")
)

type AuthProcessor struct {
	store      AdminStore
	authConfig AuthConfig
	logger     *observability.Logger
}

func New(store AdminStore, authConfig AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:      store,
		authConfig: authConfig,
		logger:     logger,
	}
}

// AuthenticateAdmin validates the bearer token and resolves the caller's active admin profile
func (p *AuthProcessor) AuthenticateAdmin(ctx context.Context, token string) (store.AdminProfile, error) {
	claims, err := p.ValidateJWTToken(ctx, token)
	if err != nil {
		return store.AdminProfile{}, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		p.logger.WarnWithError(ctx, "token subject is not a uuid", err)
		return store.AdminProfile{}, ErrInvalidSubject
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_id", Value: userID.String()})

	profile, err := p.store.GetAdminProfile(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		profile, err = p.provision(ctx, userID, claims)
		if err != nil {
			return store.AdminProfile{}, err
		}
	case err != nil:
		p.logger.Error(ctx, "failed to get admin profile", err)
		return store.AdminProfile{}, err
	}

	if !profile.IsActive {
		p.logger.Warn(ctx, "inactive admin rejected")
		return store.AdminProfile{}, ErrAdminInactive
	}
	return profile, nil
}

func (p *AuthProcessor) provision(ctx context.Context, userID uuid.UUID, claims BaseClaims) (store.AdminProfile, error) {
	email := strings.TrimSpace(claims.Email)
	if !p.authConfig.AutoProvision || email == "" {
		return store.AdminProfile{}, ErrAdminNotFound
	}

	var fullName *string
	if name := strings.TrimSpace(claims.UserMetadata.FullName); name != "" {
		fullName = &name
	}

	profile, err := p.store.CreateAdminProfile(ctx, userID, email, fullName)
	if err != nil {
		p.logger.Error(ctx, "failed to provision admin profile", err)
		return store.AdminProfile{}, err
	}
	p.logger.Info(ctx, "admin profile provisioned")
	return profile, nil
}
