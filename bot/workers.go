package bot

import (
	"time"

	"github.com/Acronica/Team-Maker/domain/engine"

	log "github.com/sirupsen/logrus"
)

// startSetupSweep periodically drops wizard sessions older than the TTL so
// abandoned setups do not accumulate for the life of the process.
func (b *Bot) startSetupSweep() {
	ticker := time.NewTicker(b.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stop:
			return
		case <-ticker.C:
			before := b.registry.SetupCount()
			cutoff := b.clock.Now().Add(-b.config.SetupSessionTTL)
			if _, err := b.registry.Dispatch(engine.ExpireSetups{Cutoff: cutoff}); err != nil {
				log.WithError(err).Error("Setup sweep failed")
				continue
			}
			if removed := before - b.registry.SetupCount(); removed > 0 {
				log.WithField("removed", removed).Info("Expired stale setup sessions")
			}
		}
	}
}
