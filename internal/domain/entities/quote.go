package entities

import (
	"strings"
	"time"
)

// QuoteStatus is derived from line item attributes, never stored directly.
//
// pending -> quoted happens only through the quote-amount update. completed is
// a remote-side state this service observes but never sets.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusCompleted QuoteStatus = "completed"
)

func ParseQuoteStatus(s string) (QuoteStatus, bool) {
	switch QuoteStatus(s) {
	case QuoteStatusPending, QuoteStatusQuoted, QuoteStatusCompleted:
		return QuoteStatus(s), true
	}
	return "", false
}

// Quote is the customer pricing request, materialized from a remote draft order.
//
// LineItems[0] is the canonical carrier of order-level metadata (quote number,
// status and quoted amount).
type Quote struct {
	ID            string      `json:"id"`
	DisplayName   string      `json:"displayName"`
	QuoteNumber   string      `json:"quoteNumber,omitempty"`
	CustomerEmail string      `json:"customerEmail"`
	Status        QuoteStatus `json:"status"`
	TotalPrice    string      `json:"totalPrice"`
	Currency      string      `json:"currency,omitempty"`
	Note          string      `json:"note"`
	InvoiceURL    string      `json:"invoiceUrl,omitempty"`
	LineItems     []LineItem  `json:"lineItems"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type LineItem struct {
	ID               string         `json:"id,omitempty"`
	Title            string         `json:"title"`
	Quantity         int            `json:"quantity"`
	UnitPrice        string         `json:"unitPrice"`
	CustomAttributes Attributes     `json:"customAttributes"`
	Fields           LineItemFields `json:"fields"`
}

// QuoteList is the result of listing quotes. The counts describe the whole
// fetched population, before any status filter narrows Items.
type QuoteList struct {
	Items        []Quote `json:"items"`
	Total        int     `json:"total"`
	PendingCount int     `json:"pendingCount"`
	QuotedCount  int     `json:"quotedCount"`
}

type CreatedQuote struct {
	QuoteID     string `json:"quoteId"`
	RemoteID    string `json:"remoteId"`
	DisplayName string `json:"displayName"`
	InvoiceURL  string `json:"invoiceUrl"`
}

// QuoteInput is a customer submission.
type QuoteInput struct {
	CustomerName  string
	CustomerEmail string
	Phone         string
	Company       string
	Note          string
	Files         []QuoteFileInput
}

// QuoteFileInput describes one submitted file. ClientID links it to the
// upload result that produced its asset.
type QuoteFileInput struct {
	ClientID   string
	FileName   string
	Quantity   int
	Parameters EngineeringParameters
	Extra      map[string]string
}

type QuoteAmountUpdate struct {
	Amount      string
	Note        string
	SenderEmail string
}

// AuthContext is the already-extracted caller identity.
type AuthContext struct {
	Email   string
	IsAdmin bool
}

// AuthSource carries the raw identity signals of a request. Body values win
// over query values.
type AuthSource struct {
	BodyEmail  string
	BodyAdmin  string
	QueryEmail string
	QueryAdmin string
}

// DraftOrderInput is the write model sent to the remote platform. The remote
// replaces the full line item set on update.
type DraftOrderInput struct {
	Email     string
	Note      string
	Tags      []string
	LineItems []DraftOrderLineItemInput
}

type DraftOrderLineItemInput struct {
	Title             string
	Quantity          int
	OriginalUnitPrice string
	CustomAttributes  Attributes
}

// InvoiceNotice is the "send notice" payload.
type InvoiceNotice struct {
	To            string
	Subject       string
	CustomMessage string
}

// SubmitResult pairs the upload batch with the quote created from it. Quote is
// nil when no file became a usable asset.
type SubmitResult struct {
	Upload UploadBatchResult `json:"upload"`
	Quote  *CreatedQuote     `json:"quote"`
}

// QuoteTag marks draft orders created by this service.
const QuoteTag = "3d-print-quote"

const draftOrderGIDPrefix = "gid://shopify/DraftOrder/"

// DraftOrderGID accepts a bare numeric id or a full global id.
func DraftOrderGID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "gid://") {
		return id
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}
	return draftOrderGIDPrefix + id
}
