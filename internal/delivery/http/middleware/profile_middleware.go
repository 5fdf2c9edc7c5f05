package middleware

import (
	"context"
	"net/http"

	"lenglogs/internal/domain/entity"
	"lenglogs/internal/domain/repository"
	"lenglogs/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfileMiddleware re-reads the caller's profile on every request so role,
// facility and active flag changes apply without signing in again.
type ProfileMiddleware struct {
	db          *gorm.DB
	log         *logrus.Logger
	profileRepo repository.UserProfileRepository
}

func NewProfileMiddleware(db *gorm.DB, log *logrus.Logger, profileRepo repository.UserProfileRepository) *ProfileMiddleware {
	return &ProfileMiddleware{
		db:          db,
		log:         log,
		profileRepo: profileRepo,
	}
}

// LoadProfile must run after Authenticate.
func (m *ProfileMiddleware) LoadProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Please sign in")
			return
		}

		profile, err := m.profileRepo.FindByUserID(m.db.WithContext(r.Context()), userID)
		if err != nil {
			m.log.Warnf("Failed to load profile: %+v", err)
			response.InternalServerError(w, "Failed to load profile")
			return
		}
		if profile == nil || !profile.IsActive {
			response.Unauthorized(w, "Please sign in")
			return
		}

		ctx := context.WithValue(r.Context(), ProfileKey, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProfileFromContext returns the profile stored by LoadProfile.
func GetProfileFromContext(ctx context.Context) (*entity.UserProfile, bool) {
	profile, ok := ctx.Value(ProfileKey).(*entity.UserProfile)
	return profile, ok && profile != nil
}
