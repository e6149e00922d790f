package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher recomputes and republishes the cached availability summaries.
type Refresher interface {
	RefreshSummaries(ctx context.Context) (int, error)
}

const snapshotTimeout = 2 * time.Minute

func StartDailyScheduler(r Refresher, spec string) (*cron.Cron, error) {
	c := cron.New()

	// Runs every day at 00:05 AM unless SNAPSHOT_CRON says otherwise
	_, err := c.AddFunc(spec, func() {
		log.Println("Running Daily Availability Snapshot...")
		RunSnapshot(r)
	})
	if err != nil {
		log.Println("Error from cron.AddFunc: ", err)
		return nil, err
	}

	c.Start()
	return c, nil
}

/*
* Recompute the global summary and each hospital's summary
* So the dashboard and the gauges are fresh at the start of the day
 */
func RunSnapshot(r Refresher) int {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	n, err := r.RefreshSummaries(ctx)
	if err != nil {
		log.Println("Error from RefreshSummaries: ", err)
		return 0
	}
	log.Println("Refreshed availability summaries: ", n)
	return n
}
