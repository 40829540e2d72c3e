// Command scan runs the low stock and payment due notification scans once
// and exits. Intended for an external cron scheduler as an alternative to
// the HTTP trigger endpoints.
package main

import (
	"flag"
	"time"

	"github.com/sraidytech/Inventory-Management-sub001/internal/config"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/database"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
)

func main() {
	var (
		lowStock   = flag.Bool("low-stock", true, "run the low stock scan")
		paymentDue = flag.Bool("payment-due", true, "run the payment due scan")
		force      = flag.Bool("force", false, "bypass the daily dedup (testing only)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	db, err := database.Connect(database.Options{DSN: cfg.DSN()})
	if err != nil {
		logger.Fatal(err)
	}

	notifRepo := repository.NewNotificationRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	scans := service.NewNotificationService(notifRepo, productRepo, txRepo, settingsRepo, db, nil, cfg.PaymentDueWindowDays)
	now := time.Now()

	if *lowStock {
		result, err := scans.ScanLowStock(now, *force)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("low stock scan done",
			"emitted", result.Emitted, "skipped", result.Skipped, "failed", result.Failed)
	}

	if *paymentDue {
		result, err := scans.ScanPaymentDue(now)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Info("payment due scan done",
			"emitted", result.Emitted, "skipped", result.Skipped, "failed", result.Failed)
	}
}
