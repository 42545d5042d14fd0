package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/searn/hubadmin/internal/domain"
	"github.com/searn/hubadmin/internal/policy"
	"github.com/searn/hubadmin/internal/usecase"
	"github.com/searn/hubadmin/internal/usecase/mocks"
)

var (
	storeAdmin = domain.Principal{UserID: "u-sa", Email: "owner@hub.io", Role: domain.RoleStoreAdmin, MerchantID: "M1"}
	superAdmin = domain.Principal{UserID: "u-root", Email: "root@hub.io", Role: domain.RoleSuperAdmin}
)

func TestAccessUseCase_DecideRecordsEveryDecision(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockDecisionRecorder(ctrl)
	recorder.EXPECT().RecordDecision(domain.ResourceTransaction, domain.ActionView, true)
	recorder.EXPECT().RecordDecision(domain.ResourceReport, domain.ActionView, false)

	uc := usecase.NewAccessUseCase(nil, recorder, nil)
	ctx := context.Background()

	assert.True(t, uc.Decide(ctx, storeAdmin, domain.ResourceTransaction, nil, domain.ActionView))
	assert.False(t, uc.Decide(ctx, storeAdmin, domain.ResourceReport, nil, domain.ActionView))
}

func TestAccessUseCase_AuditsDeniedMutationsOnly(t *testing.T) {
	t.Parallel()

	audit := mocks.NewMemoryAuditLog()
	uc := usecase.NewAccessUseCase(policy.DefaultGate{}, &mocks.CountingRecorder{}, audit)
	ctx := usecase.WithRequestID(context.Background(), "req-1")

	foreign := (&domain.BlockedIP{ID: "b9", Merchants: domain.OwnerRefs{{ID: "M2"}}}).Instance()

	assert.False(t, uc.Decide(ctx, storeAdmin, domain.ResourceBlockedIP, foreign, domain.ActionView))
	assert.False(t, uc.Decide(ctx, storeAdmin, domain.ResourceBlockedIP, foreign, domain.ActionDelete))
	assert.True(t, uc.Decide(ctx, superAdmin, domain.ResourceBlockedIP, foreign, domain.ActionDelete))

	entries := audit.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OutcomeDeny, entries[0].Outcome)
	assert.Equal(t, domain.ActionDelete, entries[0].Action)
	assert.Equal(t, "b9", entries[0].InstanceID)
	assert.Equal(t, "M1", entries[0].MerchantID)
	assert.Equal(t, "req-1", entries[0].RequestID)
}

func TestAccessUseCase_AuditFailureDoesNotChangeDecision(t *testing.T) {
	t.Parallel()

	audit := mocks.NewMemoryAuditLog()
	audit.AppendFunc = func(context.Context, *domain.DecisionEntry) error {
		return errors.New("redis down")
	}
	uc := usecase.NewAccessUseCase(nil, nil, audit)

	err := uc.Authorize(context.Background(), storeAdmin, domain.ResourceMerchant, nil, domain.ActionCreate)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAccessUseCase_Authorize(t *testing.T) {
	t.Parallel()

	uc := usecase.NewAccessUseCase(nil, nil, nil)
	ctx := context.Background()

	assert.NoError(t, uc.Authorize(ctx, superAdmin, domain.ResourceMerchant, nil, domain.ActionCreate))
	assert.ErrorIs(t, uc.Authorize(ctx, storeAdmin, domain.ResourceMerchant, nil, domain.ActionCreate), domain.ErrForbidden)
	assert.True(t, uc.InScope(storeAdmin, domain.SingleOwner("M1")))
	assert.Same(t, policy.GetCapabilities(domain.RoleStoreAdmin), uc.Capabilities(domain.RoleStoreAdmin))
}

func TestAccessUseCase_RecentDecisions(t *testing.T) {
	t.Parallel()

	audit := mocks.NewMemoryAuditLog()
	uc := usecase.NewAccessUseCase(nil, nil, audit)
	ctx := context.Background()

	uc.Decide(ctx, storeAdmin, domain.ResourcePlatform, nil, domain.ActionCreate)

	_, err := uc.RecentDecisions(ctx, storeAdmin, domain.AuditFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.RecentDecisions(ctx, domain.Principal{Role: domain.RoleSuperManager}, domain.AuditFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	entries, err := uc.RecentDecisions(ctx, superAdmin, domain.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ResourcePlatform, entries[0].Resource)

	empty, err := usecase.NewAccessUseCase(nil, nil, nil).RecentDecisions(ctx, superAdmin, domain.AuditFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
