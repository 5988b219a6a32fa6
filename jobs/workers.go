package jobs

import (
	"time"

	"github.com/Meghana-710/CalmSpace/controllers"
	"github.com/Meghana-710/CalmSpace/utils"
	"github.com/go-co-op/gocron"
)

// AvailabilityJanitor periodically deletes availability records for dates
// that have already passed, the same sweep the admin can trigger by hand.
// In-flight reservations for a flushed date fail their availability lookup
// and surface as not-found rather than booking against a deleted record.
type AvailabilityJanitor struct{}

// NewAvailabilityJanitor creates a new janitor
func NewAvailabilityJanitor() *AvailabilityJanitor {
	return &AvailabilityJanitor{}
}

// Start schedules the nightly flush and returns the running scheduler
func (aj *AvailabilityJanitor) Start() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("00:30").Do(func() {
		utils.LogInfo("Running past availability flush...")
		flushed, err := controllers.FlushPastAvailabilityNow()
		if err != nil {
			utils.LogError("Availability flush failed: %v", err)
			return
		}
		if flushed > 0 {
			utils.LogInfo("Flushed %d past availability records", flushed)
		}
	})

	scheduler.StartAsync()
	utils.LogInfo("Availability janitor started")

	return scheduler
}
