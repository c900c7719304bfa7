package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/ticket-reconciler-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	aggregatingmocks "github.com/vfg2006/ticket-reconciler-api/internal/usecases/aggregating/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*SnapshotRefreshService, *repomocks.MockSnapshotRepository, *aggregatingmocks.MockCachedAggregator) {
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	mockAggregator := aggregatingmocks.NewMockCachedAggregator(ctrl)

	service := &SnapshotRefreshService{
		config: SnapshotRefreshConfig{
			CronSchedule:      "*/30 * * * *",
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		snapshotRepo:       mockSnapshotRepo,
		aggregatingService: mockAggregator,
	}

	return service, mockSnapshotRepo, mockAggregator
}

func TestSnapshotRefreshService_refreshAllSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSnapshotRepo, mockAggregator := newTestService(ctrl)

	keys := []*domain.SnapshotKey{
		{OwnerID: "OWN001", WindowDays: 30},
		{OwnerID: "OWN001", WindowDays: 7},
		{OwnerID: "OWN002", WindowDays: 30},
	}

	mockSnapshotRepo.EXPECT().
		ListKeys().
		Return(keys, nil)

	// Uma chave fresca é pulada; as divergentes são recomputadas
	mockAggregator.EXPECT().
		GetMetrics("OWN001", 30).
		Return(&domain.MetricsSnapshotEntry{}, domain.CacheStateFresh, nil)
	mockAggregator.EXPECT().
		GetMetrics("OWN001", 7).
		Return(&domain.MetricsSnapshotEntry{}, domain.CacheStateStale, nil)
	mockAggregator.EXPECT().
		GetMetrics("OWN002", 30).
		Return(&domain.MetricsSnapshotEntry{}, domain.CacheStateStale, nil)

	service.refreshAllSnapshots()

	assert.Equal(t, 2, service.lastRefreshedCount)
	assert.Equal(t, 1, service.lastSkippedCount)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestSnapshotRefreshService_refreshAllSnapshots_ErroEmUmaChaveNaoInterrompeAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSnapshotRepo, mockAggregator := newTestService(ctrl)

	keys := []*domain.SnapshotKey{
		{OwnerID: "OWN001", WindowDays: 30},
		{OwnerID: "OWN002", WindowDays: 30},
	}

	mockSnapshotRepo.EXPECT().
		ListKeys().
		Return(keys, nil)

	mockAggregator.EXPECT().
		GetMetrics("OWN001", 30).
		Return(nil, domain.CacheState(""), assert.AnError)
	mockAggregator.EXPECT().
		GetMetrics("OWN002", 30).
		Return(&domain.MetricsSnapshotEntry{}, domain.CacheStateStale, nil)

	service.refreshAllSnapshots()

	assert.Equal(t, 1, service.lastRefreshedCount)
	assert.Equal(t, 0, service.lastSkippedCount)
}

func TestSnapshotRefreshService_refreshAllSnapshots_JaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	// Nenhuma expectativa registrada: execução concorrente é ignorada
	service.syncRunning = true
	service.refreshAllSnapshots()

	assert.True(t, service.syncRunning)
}

func TestSnapshotRefreshService_refreshAllSnapshots_SemChaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockSnapshotRepo, _ := newTestService(ctrl)

	mockSnapshotRepo.EXPECT().
		ListKeys().
		Return([]*domain.SnapshotKey{}, nil)

	service.refreshAllSnapshots()

	assert.Equal(t, 0, service.lastRefreshedCount)
	assert.Equal(t, 0, service.lastSkippedCount)
}

func TestSnapshotRefreshService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/30 * * * *", status["sync_cron"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
}
