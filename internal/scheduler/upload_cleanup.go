package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-inactivity-api/infrastructure/storage"
	"github.com/vfg2006/customer-inactivity-api/internal/config"
)

// UploadCleanupConfig representa a configuração da limpeza de uploads
type UploadCleanupConfig struct {
	CronSchedule   string
	MaxAge         time.Duration
	CleanupEnabled bool
}

// UploadCleanupService remove planilhas esquecidas no diretório de upload.
// O handler já remove o arquivo ao final de cada requisição; aqui só sobram
// arquivos de processos interrompidos.
type UploadCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 UploadCleanupConfig
	dir                    string
	now                    func() time.Time
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
	lastRemoved            int
}

// NewUploadCleanupService cria uma nova instância do serviço de limpeza de uploads
func NewUploadCleanupService(dir string, appConfig *config.Config) *UploadCleanupService {
	cleanupConfig := UploadCleanupConfig{
		CronSchedule:   appConfig.UploadCleanup.CronSchedule,
		MaxAge:         appConfig.UploadCleanup.MaxAge,
		CleanupEnabled: appConfig.UploadCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"max_age":         cleanupConfig.MaxAge.String(),
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
		"upload_dir":      dir,
	}).Info("Configuração da limpeza de uploads carregada")

	return &UploadCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		dir:       dir,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *UploadCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de uploads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de uploads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de uploads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de uploads")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza imediatamente e retorna quantos arquivos foram removidos
func (s *UploadCleanupService) RunNow() int {
	return s.cleanup()
}

// TriggerManualCleanup inicia manualmente uma limpeza em segundo plano
func (s *UploadCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de uploads já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de uploads")
	go s.cleanup()
}

func (s *UploadCleanupService) cleanup() int {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de uploads já em andamento, ignorando")
		return 0
	}
	s.cleanupRunning = true
	s.lastCleanupStartedAt = s.now()
	s.cleanupMutex.Unlock()

	removed := 0
	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.lastCleanupCompletedAt = s.now()
		s.lastRemoved = removed
		s.cleanupMutex.Unlock()
	}()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logrus.WithError(err).WithField("upload_dir", s.dir).Error("Erro ao listar diretório de upload")
		return 0
	}

	cutoff := s.now().Add(-s.config.MaxAge)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), storage.FilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", path).Warn("Erro ao remover upload antigo")
			continue
		}
		removed++
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Limpeza de uploads concluída")
	}

	return removed
}

// GetStatus retorna o status atual do agendador
func (s *UploadCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":           s.config.CleanupEnabled,
		"cleanup_cron":              s.config.CronSchedule,
		"cleanup_max_age":           s.config.MaxAge.String(),
		"upload_dir":                s.dir,
		"cleanup_running":           s.cleanupRunning,
		"last_cleanup_started_at":   s.lastCleanupStartedAt,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
		"last_cleanup_removed":      s.lastRemoved,
	}
}
