package payment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spicehouse/restaurant-backend/internal/types/order"
	"github.com/spicehouse/restaurant-backend/internal/types/payment"
)

type mockSyncer struct {
	mu      sync.Mutex
	synced  []string
	syncErr error
}

func (m *mockSyncer) SyncOrderPayment(ctx context.Context, po *payment.PaymentOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.synced = append(m.synced, po.RazorpayOrderID)
	return m.syncErr
}

func TestWorkerLoopDrainsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan payment.PaymentOrder, 2)
	jobs <- payment.PaymentOrder{RazorpayOrderID: "order_1", OrderID: "o1"}
	jobs <- payment.PaymentOrder{RazorpayOrderID: "order_2", OrderID: "o2"}
	close(jobs)

	m := &mockSyncer{}
	workerLoop(ctx, 1, jobs, m)

	assert.Equal(t, []string{"order_1", "order_2"}, m.synced)
}

func TestWorkerLoopContinuesAfterError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan payment.PaymentOrder, 2)
	jobs <- payment.PaymentOrder{RazorpayOrderID: "order_1"}
	jobs <- payment.PaymentOrder{RazorpayOrderID: "order_2"}
	close(jobs)

	m := &mockSyncer{syncErr: errors.New("db error")}
	workerLoop(ctx, 2, jobs, m)

	assert.Len(t, m.synced, 2)
}

func TestSyncOrderPaymentAppliesLaggingOrder(t *testing.T) {
	store := newFakeStore()
	orderID := store.addOrder()
	svc := newTestService(store, &fakeGateway{})

	po := &payment.PaymentOrder{
		RazorpayOrderID:   remoteOrderID,
		OrderID:           orderID,
		Status:            payment.StatusCompleted,
		RazorpayPaymentID: remotePayID,
	}
	assert.NoError(t, svc.SyncOrderPayment(context.Background(), po))

	o := store.orders[orderID]
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus)
	assert.Equal(t, remotePayID, o.PaymentID)
}

func TestSyncOrderPaymentAlreadyCompleted(t *testing.T) {
	store := newFakeStore()
	orderID := store.addOrder()
	store.orders[orderID].PaymentStatus = order.PaymentCompleted
	store.orders[orderID].PaymentID = "pay_old"
	svc := newTestService(store, &fakeGateway{})

	po := &payment.PaymentOrder{
		RazorpayOrderID:   remoteOrderID,
		OrderID:           orderID,
		Status:            payment.StatusCompleted,
		RazorpayPaymentID: remotePayID,
	}
	assert.NoError(t, svc.SyncOrderPayment(context.Background(), po))
	// a completed order is left alone
	assert.Equal(t, "pay_old", store.orders[orderID].PaymentID)
}

func TestSyncOrderPaymentMissingOrder(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeGateway{})

	po := &payment.PaymentOrder{
		RazorpayOrderID:   remoteOrderID,
		OrderID:           "0123456789abcdef01234567",
		Status:            payment.StatusCompleted,
		RazorpayPaymentID: remotePayID,
	}
	assert.NoError(t, svc.SyncOrderPayment(context.Background(), po))
}

func TestSyncOrderPaymentSkipsIncompleteRecords(t *testing.T) {
	store := newFakeStore()
	orderID := store.addOrder()
	svc := newTestService(store, &fakeGateway{})

	// no payment id yet, nothing to propagate
	po := &payment.PaymentOrder{RazorpayOrderID: remoteOrderID, OrderID: orderID, Status: payment.StatusCompleted}
	assert.NoError(t, svc.SyncOrderPayment(context.Background(), po))
	assert.Equal(t, order.PaymentPending, store.orders[orderID].PaymentStatus)
}
