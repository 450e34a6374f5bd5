package rotation

import (
	"dialogd/internal/providers"
	"dialogd/internal/rotation/interfaces"
	"dialogd/internal/services"
	"dialogd/internal/structures"
	"github.com/roylee0704/gron"
	"sync"
)

// Scheduler periodically moves the current demo dialog to a new seed.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.DialogServiceInterface
	cron    *gron.Cron
	mu      sync.Mutex
}

func (s *Scheduler) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Rotation.Interval), s.rotate)
	s.cron.Start()

	s.logger.Infof(providers.TypeApp, "Dialog rotation every %s, current seed=%d", s.config.Rotation.Interval, s.service.CurrentSeed())
}

func (s *Scheduler) rotate() {
	seed := s.service.Rotate()
	s.logger.Infof(providers.TypeApp, "Current dialog rotated, seed=%d", seed)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.DialogServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
	}
}
