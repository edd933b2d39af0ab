package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"

	"shopmart/internal/repositories"
)

const scanInterval = 30 * time.Minute

// StockAlertJob periodically scans the catalog and logs products whose
// stock fell below the configured threshold.
type StockAlertJob struct {
	scheduler gocron.Scheduler
	products  repositories.ProductRepository
	threshold int
}

func NewStockAlertJob(products repositories.ProductRepository, threshold int) (*StockAlertJob, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	j := &StockAlertJob{
		scheduler: scheduler,
		products:  products,
		threshold: threshold,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(scanInterval),
		gocron.NewTask(j.run),
		gocron.WithName("low-stock-scan"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return j, nil
}

func (j *StockAlertJob) Start() {
	logrus.Info("Starting background job scheduler")
	j.scheduler.Start()
}

func (j *StockAlertJob) Stop() error {
	logrus.Info("Stopping background job scheduler")
	return j.scheduler.Shutdown()
}

func (j *StockAlertJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	products, err := j.products.ListBelowStock(ctx, j.threshold)
	if err != nil {
		logrus.WithError(err).Error("low stock scan failed")
		return
	}

	for _, p := range products {
		logrus.WithFields(logrus.Fields{
			"product_id": p.ID,
			"name":       p.Name,
			"stock":      p.Stock,
			"threshold":  j.threshold,
		}).Warn("product stock below threshold")
	}

	logrus.WithField("flagged", len(products)).Info("low stock scan completed")
}
