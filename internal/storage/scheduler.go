package storage

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"dirfav/internal/providers"
	"dirfav/internal/storage/interfaces"
	"dirfav/internal/structures"
)

// Scheduler ties the store to its partition file: it restores the
// partition on startup, serves write-through persists, and runs a
// periodic defensive flush for the case where a write-through failed.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       KVStoreInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.store.SetPersister(s)

	s.cron = gron.New()
	interval := s.config.Persistence.FlushInterval

	s.cron.AddFunc(gron.Every(interval*time.Second), func() {
		if !s.store.Dirty() {
			return
		}
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeStorage, "Error while persisting partition: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Infof(providers.TypeStorage, "Flushed partition to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error while persisting partition: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store KVStoreInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		fileManager: fileManager,
		metrics:     metrics,
	}
}
