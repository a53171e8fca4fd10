package entities

import "time"

type NotificationEvent string

const (
	NotificationQuoteSubmitted NotificationEvent = "quote.submitted"
	NotificationQuoteQuoted    NotificationEvent = "quote.quoted"
)

// QuoteNotification is the plain record handed to the notification
// collaborator. Delivery is fire-and-forget.
type QuoteNotification struct {
	EventID       string             `json:"eventId"`
	Event         NotificationEvent  `json:"event"`
	QuoteID       string             `json:"quoteId"`
	RemoteID      string             `json:"remoteId"`
	CustomerName  string             `json:"customerName,omitempty"`
	CustomerEmail string             `json:"customerEmail"`
	Amount        string             `json:"amount,omitempty"`
	Files         []NotificationFile `json:"files,omitempty"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

type NotificationFile struct {
	FileName   string                `json:"fileName"`
	AssetURL   string                `json:"assetUrl,omitempty"`
	Quantity   int                   `json:"quantity"`
	Parameters EngineeringParameters `json:"parameters"`
}
