// Package enrollment enforces the registration rules on the shared
// activity catalog. All decision logic lives here: the store below it
// only holds data, the transport above it only translates requests.
package enrollment

import (
	"context"
	"fmt"
	"sync"

	"mergington-activities/internal/catalog"
	"mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/models"
)

// Service exposes list/register/unregister over the catalog store.
//
// The mutex scopes every check-then-act sequence: two concurrent
// registrations of the same (activity, email) pair cannot both pass the
// duplicate check, and register/unregister cannot race past each
// other's precondition. List takes the read lock only.
type Service struct {
	mu     sync.RWMutex
	store  *catalog.Store
	cache  catalog.ListCache
	logger logger.Logger
}

func NewService(store *catalog.Store, cache catalog.ListCache, log logger.Logger) *Service {
	if cache == nil {
		cache = catalog.NoopListCache{}
	}
	return &Service{
		store:  store,
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"component": "enrollment"}),
	}
}

// List returns a deep-copied snapshot of the full catalog. It cannot
// fail; a cache miss or cache outage falls back to the store.
func (s *Service) List(ctx context.Context) models.Catalog {
	if snapshot, ok := s.cache.Get(ctx); ok {
		return snapshot
	}

	// The cache fill happens under the read lock. Mutations hold the
	// write lock while they invalidate, so a snapshot can never land
	// after the invalidate of a mutation it does not contain.
	s.mu.RLock()
	snapshot := s.store.GetAll().Clone()
	s.cache.Set(ctx, snapshot)
	s.mu.RUnlock()

	return snapshot
}

// Register appends email to the activity's roster.
//
// Preconditions, checked in order: the activity must exist, and the
// email must not already be on the roster. A repeat registration is an
// error, not a no-op. Capacity (max_participants) is never checked.
func (s *Service) Register(ctx context.Context, activityName, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := s.store.Get(activityName)
	if activity == nil {
		metrics.EnrollmentErrors.WithLabelValues("register", string(errors.ErrCodeActivityNotFound)).Inc()
		return "", errors.NewActivityNotFoundError(activityName)
	}

	if activity.HasParticipant(email) {
		metrics.EnrollmentErrors.WithLabelValues("register", string(errors.ErrCodeStudentAlreadyRegistered)).Inc()
		return "", errors.NewAlreadyRegisteredError(activityName, email)
	}

	s.store.AddParticipant(activityName, email)
	s.cache.Invalidate(ctx)

	metrics.SignupsTotal.WithLabelValues(activityName).Inc()
	s.logger.Info("student signed up", map[string]interface{}{
		"activity":   activityName,
		"email":      email,
		"rosterSize": len(activity.Participants),
	})

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's roster.
//
// Preconditions, checked in order: the activity must exist, and the
// email must currently be on the roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity := s.store.Get(activityName)
	if activity == nil {
		metrics.EnrollmentErrors.WithLabelValues("unregister", string(errors.ErrCodeActivityNotFound)).Inc()
		return "", errors.NewActivityNotFoundError(activityName)
	}

	if !activity.HasParticipant(email) {
		metrics.EnrollmentErrors.WithLabelValues("unregister", string(errors.ErrCodeStudentNotRegistered)).Inc()
		return "", errors.NewNotRegisteredError(activityName, email)
	}

	s.store.RemoveParticipant(activityName, email)
	s.cache.Invalidate(ctx)

	metrics.UnregistrationsTotal.WithLabelValues(activityName).Inc()
	s.logger.Info("student unregistered", map[string]interface{}{
		"activity":   activityName,
		"email":      email,
		"rosterSize": len(activity.Participants),
	})

	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}

// Reset restores the catalog to its seed state and drops the list
// cache. Intended for tests.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Reset()
	s.cache.Invalidate(ctx)
}
