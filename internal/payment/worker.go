package payment

import (
	"context"
	"log"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/types/payment"
)

type Syncer interface {
	SyncOrderPayment(ctx context.Context, po *payment.PaymentOrder) error
}

func workerLoop(ctx context.Context, id int, jobs <-chan payment.PaymentOrder, svc Syncer) {
	for {
		select {
		case <-ctx.Done():
			return

		case po, ok := <-jobs:
			if !ok {
				return
			}
			if err := svc.SyncOrderPayment(ctx, &po); err != nil {
				log.Printf("[reconciler %d] sync order %s: %v", id, po.OrderID, err)
			}
		}
	}
}

// DispatcherLoop periodically lists completed payment orders and fans them
// out to workers that re-apply the order-side payment state.
func DispatcherLoop(ctx context.Context, svc *Service, workerCount int, interval time.Duration) {
	jobs := make(chan payment.PaymentOrder, workerCount*3)

	for i := 1; i <= workerCount; i++ {
		go workerLoop(ctx, i, jobs, svc)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			close(jobs)
			return
		case <-ticker.C:
			orders, err := svc.ListForReconciliation(ctx)
			if err != nil {
				log.Printf("[reconciler] list completed payment orders: %v", err)
				continue
			}
			for _, po := range orders {
				select {
				case jobs <- po:
				default:
					// channel full, the next tick picks it up
				}
			}
		}
	}
}
