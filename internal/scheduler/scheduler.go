package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/freshkeep/freshkeep-backend/internal/utils"
	"github.com/freshkeep/freshkeep-backend/internal/utils/mailing"
	"github.com/freshkeep/freshkeep-backend/pkg/alert"
	"github.com/freshkeep/freshkeep-backend/pkg/food"
)

// Scheduler runs the daily expiry digest. The digest is an email summary of
// every item currently inside the notification window; read state is ignored
// because email is a separate channel from in-app alerts.
type Scheduler struct {
	cron           *cron.Cron
	foodRepository food.FoodRepository
	logger         *zap.Logger
}

func NewScheduler(foodRepository food.FoodRepository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:           cron.New(),
		foodRepository: foodRepository,
		logger:         logger,
	}
}

// Start registers the digest job and starts the cron loop. Without a
// configured recipient the scheduler stays idle.
func (s *Scheduler) Start() {
	if utils.GetConfig("DIGEST_EMAIL") == "" {
		s.logger.Info("digest email not configured, scheduler idle")
		return
	}

	s.logger.Info("starting scheduler")

	// Daily at 08:00 local time.
	_, err := s.cron.AddFunc("0 8 * * *", s.sendExpiryDigest)
	if err != nil {
		s.logger.Error("failed to schedule expiry digest", zap.Error(err))
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendExpiryDigest() {
	s.logger.Info("generating expiry digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items, err := s.foodRepository.LoadInventory(ctx)
	if err != nil {
		s.logger.Error("failed to load inventory for digest", zap.Error(err))
		return
	}

	alerts := alert.Generate(items, time.Now())
	if len(alerts) == 0 {
		s.logger.Info("no expiring items, skipping digest")
		return
	}

	var body strings.Builder
	body.WriteString("<h2>FreshKeep expiry digest</h2><ul>")
	for _, a := range alerts {
		fmt.Fprintf(&body, "<li>%s</li>", a.Message)
	}
	body.WriteString("</ul>")

	recipient := utils.GetConfig("DIGEST_EMAIL")
	subject := fmt.Sprintf("FreshKeep: %d items need attention", len(alerts))
	if err := mailing.SendMail(recipient, subject, body.String()); err != nil {
		s.logger.Error("failed to send expiry digest", zap.Error(err))
		return
	}
	s.logger.Info("expiry digest sent", zap.Int("alert_count", len(alerts)))
}
