package payment

import (
	"github.com/zenflowhq/zenflow/core"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

type Record struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	// ClientName is snapshotted at creation time and never re-synced.
	ClientName    string    `json:"client_name"`
	Amount        float64   `json:"amount"`
	PaymentDate   core.Date `json:"payment_date"`
	PaymentMethod Method    `json:"payment_method"`
	Notes         string    `json:"notes,omitempty"`
}

// NewRecord contains information needed to record a payment.
type NewRecord struct {
	ClientID      string    `json:"client_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	PaymentDate   core.Date `json:"payment_date"`
	PaymentMethod Method    `json:"payment_method" validate:"required,oneof=cash card transfer"`
	Notes         string    `json:"notes"`
}

func (nr *NewRecord) Validate() error {
	nr.ClientID = core.CleanString(nr.ClientID)
	return core.Validate.Struct(nr)
}

// Summary is the display-oriented projection of a payment Record. It owns no
// state; it is recomputed from the records on every call.
type Summary struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Date        core.Date `json:"date"`
	Description string    `json:"description"`
}

const (
	summaryType        = "membership"
	summaryStatus      = "completed"
	defaultDescription = "Payment"
)

// Summarize reshapes payment records into their summary projection.
func Summarize(records []Record) []Summary {
	summaries := make([]Summary, 0, len(records))
	for _, r := range records {
		desc := r.Notes
		if desc == "" {
			desc = defaultDescription
		}
		summaries = append(summaries, Summary{
			ID:          r.ID,
			ClientID:    r.ClientID,
			ClientName:  r.ClientName,
			Amount:      r.Amount,
			Type:        summaryType,
			Status:      summaryStatus,
			Date:        r.PaymentDate,
			Description: desc,
		})
	}
	return summaries
}
