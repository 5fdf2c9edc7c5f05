package handler

import (
	"errors"
	"net/http"

	"lenglogs/internal/delivery/http/middleware"
	"lenglogs/internal/domain/entity"
	"lenglogs/internal/usecase"
	"lenglogs/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// currentProfile returns the profile loaded by the middleware chain.
func currentProfile(w http.ResponseWriter, r *http.Request) (*entity.UserProfile, bool) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Please sign in")
		return nil, false
	}
	return profile, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+label+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeCommonError handles errors shared by every facility-scoped usecase.
// It reports false when the error is left for the caller to map.
func writeCommonError(w http.ResponseWriter, err error) bool {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		response.ValidationError(w, vErr.Fields)
		return true
	}

	switch err {
	case usecase.ErrNoFacility:
		response.Forbidden(w, "No facility is assigned to your account")
	case usecase.ErrManagerOnly:
		response.Forbidden(w, "Only managers can perform this action")
	default:
		return false
	}
	return true
}
