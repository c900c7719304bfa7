package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-reconciler-api/infrastructure/repository"
	"github.com/vfg2006/ticket-reconciler-api/internal/config"
	"github.com/vfg2006/ticket-reconciler-api/internal/domain"
	"github.com/vfg2006/ticket-reconciler-api/internal/usecases/aggregating"
)

// SnapshotRefreshConfig representa a configuração do agendador de
// atualização de snapshots
type SnapshotRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SnapshotRefreshService gerencia o agendamento e execução da atualização
// periódica dos snapshots de métricas
type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotRefreshConfig
	snapshotRepo        repository.SnapshotRepository
	aggregatingService  aggregating.CachedAggregator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshedCount  int
	lastSkippedCount    int
}

// NewSnapshotRefreshService cria uma nova instância do serviço de
// atualização de snapshots
func NewSnapshotRefreshService(
	snapshotRepo repository.SnapshotRepository,
	aggregatingService aggregating.CachedAggregator,
	appConfig *config.Config,
) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule:      appConfig.SnapshotRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.SnapshotRefresh.MaxConcurrentJobs,
		SyncEnabled:       appConfig.SnapshotRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"sync_enabled":        refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de snapshots carregada")

	return &SnapshotRefreshService{
		scheduler:          scheduler,
		config:             refreshConfig,
		snapshotRepo:       snapshotRepo,
		aggregatingService: aggregatingService,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllSnapshots revisita todas as chaves de snapshot conhecidas e
// recomputa as que divergiram dos dados brutos
func (s *SnapshotRefreshService) refreshAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização de snapshots para todas as chaves conhecidas")

	keys, err := s.snapshotRepo.ListKeys()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar chaves de snapshot para atualização")
		return
	}

	if len(keys) == 0 {
		logrus.Info("Nenhuma chave de snapshot encontrada para atualização")
		return
	}

	refreshed, skipped := s.refreshKeys(keys)
	s.lastRefreshedCount = refreshed
	s.lastSkippedCount = skipped

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"keys":      len(keys),
		"refreshed": refreshed,
		"skipped":   skipped,
	}).Info("Atualização de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// refreshKeys processa as chaves com um pool limitado de workers. O caminho
// de leitura do serviço de agregação já decide entre retornar o snapshot
// fresco e recomputar o divergente.
func (s *SnapshotRefreshService) refreshKeys(keys []*domain.SnapshotKey) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var mu sync.Mutex
	refreshed := 0
	skipped := 0

	for _, key := range keys {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(k *domain.SnapshotKey) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			_, state, err := s.aggregatingService.GetMetrics(k.OwnerID, k.WindowDays)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"owner_id":    k.OwnerID,
					"window_days": k.WindowDays,
				}).Error("Erro ao atualizar snapshot da chave")
				return
			}

			mu.Lock()
			if state == domain.CacheStateFresh {
				skipped++
			} else {
				refreshed++
			}
			mu.Unlock()

			logrus.WithFields(logrus.Fields{
				"owner_id":    k.OwnerID,
				"window_days": k.WindowDays,
				"cache_state": state,
			}).Debug("Chave de snapshot revisitada")
		}(key)
	}

	wg.Wait()

	return refreshed, skipped
}

// TriggerManualSync inicia manualmente uma atualização de snapshots
func (s *SnapshotRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de snapshots")
	go s.refreshAllSnapshots()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed_count":   s.lastRefreshedCount,
		"last_skipped_count":     s.lastSkippedCount,
	}
}
