package usecase

import (
	"context"
	"errors"
	"strings"

	"lenglogs/internal/converter"
	"lenglogs/internal/delivery/dto"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"
	"lenglogs/internal/infrastructure/cache"
	"lenglogs/internal/service"
	"lenglogs/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("user profile not found")
)

type AuthUsecase interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetSession(ctx context.Context, userID uuid.UUID) (*dto.SessionResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.UserProfileRepository
	facilityRepo repository.FacilityRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	tokenStore   *cache.TokenStore
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	facilityRepo repository.FacilityRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	tokenStore *cache.TokenStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		facilityRepo: facilityRepo,
		auditService: auditService,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
	}
}

// SignUp creates the account and its profile. A manager also gets a new
// facility, created in the same transaction and owned by the new user.
func (u *authUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SignUpResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email := normalizeEmail(req.Email)
	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.UserProfile{
		UserID:    user.ID,
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      entity.Role(req.Role),
		Phone:     req.Phone,
		IsActive:  true,
	}

	var facility *entity.Facility
	if profile.IsManager() {
		facility = &entity.Facility{
			Name:      entity.DefaultFacilityName(profile.FirstName, profile.LastName),
			Email:     email,
			Phone:     req.Phone,
			CreatedBy: user.ID,
		}
		if err := u.facilityRepo.Create(tx, facility); err != nil {
			u.log.Warnf("Failed to create facility: %+v", err)
			return nil, err
		}
		profile.FacilityID = &facility.ID
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create user profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, service.AuditEntry{
		UserID:     user.ID,
		FacilityID: profile.FacilityID,
		Action:     entity.AuditActionUserSignUp,
		Entity:     "user_profile",
		EntityID:   user.ID.String(),
	}, converter.ProfileToResponse(profile)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SignUpResponse{
		User:     *converter.UserToResponse(user),
		Profile:  *converter.ProfileToResponse(profile),
		Facility: converter.FacilityToResponse(facility),
	}, nil
}

func (u *authUsecase) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := u.profileRepo.FindByUserID(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if profile == nil || !profile.IsActive {
		return nil, ErrAccountInactive
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// The sign-in already succeeded; a failed audit write is only logged.
	_ = u.auditService.LogEvent(ctx, db, service.AuditEntry{
		UserID:     user.ID,
		FacilityID: profile.FacilityID,
		Action:     entity.AuditActionUserSignIn,
	}, entity.JSON{"email": user.Email})

	return tokens, nil
}

// SignOut revokes every token of the user, ending all of their sessions.
func (u *authUsecase) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := u.tokenStore.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	// Deleting the old key both checks and consumes it, so a refresh token works once.
	revoked, err := u.tokenStore.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return nil, err
	}
	if !revoked {
		return nil, ErrTokenRevoked
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email)
}

func (u *authUsecase) GetSession(ctx context.Context, userID uuid.UUID) (*dto.SessionResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.profileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return &dto.SessionResponse{
		User:    *converter.UserToResponse(user),
		Profile: *converter.ProfileToResponse(profile),
	}, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string) (*dto.TokenResponse, error) {
	pair, err := u.jwtService.GeneratePair(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate tokens: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.SavePair(ctx, userID, pair, u.jwtService.GetAccessExpiry(), u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store tokens in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
