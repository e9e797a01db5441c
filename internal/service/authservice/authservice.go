package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/deliverypartner/internal/domain"
	"github.com/GlebRadaev/deliverypartner/internal/dto"
	"github.com/GlebRadaev/deliverypartner/internal/pg"
	"github.com/GlebRadaev/deliverypartner/pkg/auth"
	"github.com/GlebRadaev/deliverypartner/pkg/validate"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Create(ctx context.Context, identity *domain.Identity) error
	Delete(ctx context.Context, id string) error
	SetAdmin(ctx context.Context, email string) (bool, error)
}

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
}

type Service struct {
	identityRepo Repo
	accountRepo  AccountRepo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	tokenTTL     time.Duration
}

func New(repo Repo, accountRepo AccountRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		identityRepo: repo,
		accountRepo:  accountRepo,
		hashService:  hashService,
		jwtService:   jwtService,
		tokenTTL:     tokenTTL,
	}
}

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("identity not found")
	ErrRegistrationFailed = errors.New("registration failed")
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the login identity first and the business account second.
// When the account cannot be stored the identity is deleted again.
func (s *Service) Register(ctx context.Context, req *dto.RegisterRequestDTO) (*domain.Account, error) {
	req.Email = normalizeEmail(req.Email)
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.ContactPhone = strings.TrimSpace(req.ContactPhone)
	req.DefaultPickupAddress.Description = strings.TrimSpace(req.DefaultPickupAddress.Description)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.identityRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		zap.L().Error("can't find identity", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", req.Email))
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hashService.HashPassword(req.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		DisplayName:  req.OwnerName,
		Role:         domain.RoleBusiness,
	}
	if err := s.identityRepo.Create(ctx, identity); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		zap.L().Error("can't create identity", zap.Error(err))
		return nil, err
	}

	account := &domain.Account{
		ID:             identity.ID,
		Email:          identity.Email,
		OwnerName:      req.OwnerName,
		BusinessName:   req.BusinessName,
		ContactPhone:   req.ContactPhone,
		PickupLocation: req.DefaultPickupAddress.Domain(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		zap.L().Error("can't create account, removing identity", zap.String("id", identity.ID), zap.Error(err))
		if delErr := s.identityRepo.Delete(context.WithoutCancel(ctx), identity.ID); delErr != nil {
			zap.L().Error("orphan identity left behind", zap.String("id", identity.ID), zap.Error(delErr))
		}
		return nil, errors.Join(ErrRegistrationFailed, err)
	}

	zap.L().Info("business registered", zap.String("account_id", account.ID), zap.String("email", account.Email))
	return account, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if identity == nil || !s.hashService.ComparePassword(identity.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("identity authenticated", zap.String("id", identity.ID))
	return identity, nil
}

func (s *Service) GenerateToken(identity *domain.Identity) (string, error) {
	caller := domain.Caller{ID: identity.ID, Role: identity.Role, Admin: identity.Admin}
	token, err := s.jwtService.GenerateJWT(caller, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// SetAdminRole grants the admin claim. It takes effect on the target's next login.
func (s *Service) SetAdminRole(ctx context.Context, caller domain.Caller, email string) error {
	if err := auth.Authorize(caller, auth.CapabilityManageRoles); err != nil {
		zap.L().Warn("role change refused", zap.String("caller", caller.ID), zap.Error(err))
		return err
	}
	email = normalizeEmail(email)
	if email == "" {
		return validate.NewError("email", "required")
	}
	found, err := s.identityRepo.SetAdmin(ctx, email)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	zap.L().Info("admin role granted", zap.String("admin_id", caller.ID), zap.String("email", email))
	return nil
}

// EnsureAdmin promotes the configured bootstrap identity if it has registered.
func (s *Service) EnsureAdmin(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	found, err := s.identityRepo.SetAdmin(ctx, email)
	if err != nil {
		return err
	}
	if !found {
		zap.L().Warn("bootstrap admin has not registered yet", zap.String("email", email))
		return nil
	}
	zap.L().Info("bootstrap admin ensured", zap.String("email", email))
	return nil
}
