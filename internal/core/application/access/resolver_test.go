package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/access"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCache is a mock implementation of the Cache port.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func Test_Require_RoleHoldsCapability_ReturnsNil(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, "access:caps:chefAgence:full").Return("", false, nil)
	cache.On("Set", mock.Anything, "access:caps:chefAgence:full", mock.Anything, time.Minute).Return(nil)

	resolver := access.NewResolver(cache, services.PlanFull, time.Minute)

	err := resolver.Require(t.Context(), services.RoleAgencyChief, services.CapDispatchBatch, "confirm departure")
	require.NoError(t, err)

	cache.AssertExpectations(t)
}

func Test_Require_RoleLacksCapability_ReturnsNotAuthorized(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resolver := access.NewResolver(cache, services.PlanFull, time.Minute)

	err := resolver.Require(t.Context(), services.RoleAgent, services.CapValidateSession, "validate session")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func Test_Require_CacheHit_SkipsRecompute(t *testing.T) {
	cache := new(MockCache)
	// a cached set holding only CapActivateSession
	encoded := "3"
	cache.On("Get", mock.Anything, "access:caps:comptable:basic").Return(encoded, true, nil)

	resolver := access.NewResolver(cache, services.PlanBasic, time.Minute)

	err := resolver.Require(t.Context(), services.RoleAccountant, services.CapActivateSession, "activate session")
	require.NoError(t, err)

	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func Test_Require_CacheFailure_FallsBackToPureMapping(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, errors.New("connection refused"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	resolver := access.NewResolver(cache, services.PlanFull, time.Minute)

	err := resolver.Require(t.Context(), services.RoleCompanyAdmin, services.CapProcessClaim, "process claim")
	require.NoError(t, err, "cache outage must not deny authorized callers")
}

func Test_Require_BasicPlan_ClaimCapabilityDenied(t *testing.T) {
	cache := new(MockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resolver := access.NewResolver(cache, services.PlanBasic, time.Minute)

	err := resolver.Require(t.Context(), services.RoleCompanyAdmin, services.CapProcessClaim, "process claim")
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}
