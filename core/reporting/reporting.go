// Package reporting centralizes the read-side aggregations every dashboard
// screen used to recompute on its own. All functions are pure over snapshots
// of repository state.
package reporting

import (
	"time"

	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/payment"
)

// Revenue summarizes payment records for the dashboard.
type Revenue struct {
	Total        float64                    `json:"total"`
	CurrentMonth float64                    `json:"current_month"`
	ByMethod     map[payment.Method]float64 `json:"by_method"`
}

// Summarize computes revenue totals from the full payment history. The
// current-month figure covers the calendar month containing `now`.
func Summarize(records []payment.Record, now time.Time) Revenue {
	rev := Revenue{ByMethod: make(map[payment.Method]float64)}
	y, m, _ := now.UTC().Date()
	for _, r := range records {
		rev.Total += r.Amount
		rev.ByMethod[r.PaymentMethod] += r.Amount
		ry, rm, _ := r.PaymentDate.Date()
		if ry == y && rm == m {
			rev.CurrentMonth += r.Amount
		}
	}
	return rev
}

// OverdueClients returns the clients considered overdue as of `now`: those
// whose stored payment_status says so OR whose next_payment_date has passed.
func OverdueClients(clients []client.Client, now time.Time) []client.Client {
	overdue := make([]client.Client, 0)
	for _, c := range clients {
		if client.IsOverdue(c, now) {
			overdue = append(overdue, c)
		}
	}
	return overdue
}
