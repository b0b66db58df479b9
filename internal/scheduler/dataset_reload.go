package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-reporting-api/internal/config"
	"github.com/vfg2006/sales-reporting-api/internal/datastore"
)

// DatasetReloadConfig representa a configuração do agendador de recarga.
type DatasetReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
}

// DatasetReloadService recarrega o dataset periodicamente. A recarga é uma
// troca atômica da referência no datastore; consultas em andamento seguem
// lendo o snapshot antigo até terminarem.
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	config    DatasetReloadConfig
	store     *datastore.Store

	reloadMutex          sync.Mutex
	reloadRunning        bool
	lastReloadStartedAt  time.Time
	lastReloadFinishedAt time.Time
	lastReloadError      string
}

// ReloadStatus é o estado exposto pelo endpoint de status do cron.
type ReloadStatus struct {
	Enabled        bool      `json:"enabled"`
	CronSchedule   string    `json:"cron_schedule"`
	Running        bool      `json:"running"`
	LastStartedAt  time.Time `json:"last_started_at,omitempty"`
	LastFinishedAt time.Time `json:"last_finished_at,omitempty"`
	LastError      string    `json:"last_error,omitempty"`
}

// NewDatasetReloadService cria o serviço de recarga do dataset.
func NewDatasetReloadService(store *datastore.Store, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule:  appConfig.DatasetReload.CronSchedule,
		ReloadEnabled: appConfig.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		store:     store,
	}
}

// Start inicia o agendador. Com a recarga desabilitada por configuração o
// agendamento é ignorado, mas o RunNow continua disponível para o endpoint
// administrativo.
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga periódica do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar a recarga do dataset")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa uma recarga imediata. Execuções nunca se sobrepõem: uma
// recarga em andamento faz a chamada retornar sem efeito.
func (s *DatasetReloadService) RunNow(ctx context.Context) error {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return nil
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	err := s.store.Reload(ctx)

	s.reloadMutex.Lock()
	s.reloadRunning = false
	s.lastReloadFinishedAt = time.Now()
	if err != nil {
		s.lastReloadError = err.Error()
	} else {
		s.lastReloadError = ""
	}
	s.reloadMutex.Unlock()

	if err != nil {
		return errors.Wrap(err, "erro ao recarregar o dataset")
	}

	return nil
}

// Status retorna o estado corrente do agendador.
func (s *DatasetReloadService) Status() ReloadStatus {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return ReloadStatus{
		Enabled:        s.config.ReloadEnabled,
		CronSchedule:   s.config.CronSchedule,
		Running:        s.reloadRunning,
		LastStartedAt:  s.lastReloadStartedAt,
		LastFinishedAt: s.lastReloadFinishedAt,
		LastError:      s.lastReloadError,
	}
}
