package usecase

import (
	"errors"
	"sort"
	"strings"

	"lenglogs/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNoFacility  = errors.New("no facility is assigned to your account")
	ErrManagerOnly = errors.New("only managers can perform this action")
)

// ValidationError carries field level messages produced before any write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// facilityOf returns the facility the caller's data is scoped to.
func facilityOf(caller *entity.UserProfile) (uuid.UUID, error) {
	if caller == nil || caller.FacilityID == nil {
		return uuid.Nil, ErrNoFacility
	}
	return *caller.FacilityID, nil
}

// managerFacility is facilityOf for operations restricted to managers.
func managerFacility(caller *entity.UserProfile) (uuid.UUID, error) {
	if caller == nil || !caller.IsManager() {
		return uuid.Nil, ErrManagerOnly
	}
	return facilityOf(caller)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
