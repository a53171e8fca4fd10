package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RemoteStatusCompleted is the remote draft order status once it became a real order.
const RemoteStatusCompleted = "COMPLETED"

// RawDraftOrder is the remote draft order as returned by the platform or by
// the snapshot cache. LineItems is kept raw because the two sources use
// different shapes: the platform returns an edge list, the cache a plain array.
type RawDraftOrder struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Status        string          `json:"status,omitempty"`
	Note          string          `json:"note2"`
	InvoiceURL    string          `json:"invoiceUrl,omitempty"`
	TotalPriceSet *RawMoneyBag    `json:"totalPriceSet,omitempty"`
	Customer      *RawCustomer    `json:"customer,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
	LineItems     json.RawMessage `json:"lineItems,omitempty"`
}

type RawCustomer struct {
	Email string `json:"email"`
}

type RawMoneyBag struct {
	ShopMoney RawMoney `json:"shopMoney"`
}

type RawMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type RawLineItem struct {
	ID                   string          `json:"id,omitempty"`
	Title                string          `json:"title"`
	Quantity             int             `json:"quantity"`
	OriginalUnitPriceSet *RawMoneyBag    `json:"originalUnitPriceSet,omitempty"`
	CustomAttributes     json.RawMessage `json:"customAttributes,omitempty"`
}

type rawEdgeList struct {
	Edges []struct {
		Node RawLineItem `json:"node"`
	} `json:"edges"`
	Nodes []RawLineItem `json:"nodes"`
}

const defaultUnitPrice = "0.00"

func formatError(id, msg string, err error) *Error {
	return WrapError(KindFormat, fmt.Sprintf("draft order %q: %s", id, msg), err)
}

// FormatQuote maps a raw draft order into a Quote.
//
// A nil raw yields (nil, nil). Missing optional fields never fail; only a
// structurally unusable line item payload returns a FormatError.
func FormatQuote(raw *RawDraftOrder) (*Quote, error) {
	if raw == nil {
		return nil, nil
	}

	rawItems, err := decodeRawLineItems(raw.LineItems)
	if err != nil {
		return nil, formatError(raw.ID, "unusable lineItems", err)
	}

	items := make([]LineItem, 0, len(rawItems))
	for i, ri := range rawItems {
		attrs, err := decodeRawAttributes(ri.CustomAttributes)
		if err != nil {
			return nil, formatError(raw.ID, fmt.Sprintf("unusable customAttributes on line item %d", i), err)
		}
		qty := ri.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := defaultUnitPrice
		if ri.OriginalUnitPriceSet != nil && ri.OriginalUnitPriceSet.ShopMoney.Amount != "" {
			price = ri.OriginalUnitPriceSet.ShopMoney.Amount
		}
		items = append(items, LineItem{
			ID:               ri.ID,
			Title:            ri.Title,
			Quantity:         qty,
			UnitPrice:        price,
			CustomAttributes: attrs,
			Fields:           decodeLineItemFields(attrs),
		})
	}

	email := raw.Email
	if email == "" && raw.Customer != nil {
		email = raw.Customer.Email
	}

	q := &Quote{
		ID:            raw.ID,
		DisplayName:   raw.Name,
		CustomerEmail: NormalizeEmail(email),
		Status:        deriveStatus(raw.Status, items),
		Note:          raw.Note,
		InvoiceURL:    raw.InvoiceURL,
		LineItems:     items,
		CreatedAt:     parseRemoteTime(raw.CreatedAt),
		UpdatedAt:     parseRemoteTime(raw.UpdatedAt),
	}
	if raw.TotalPriceSet != nil {
		q.TotalPrice = raw.TotalPriceSet.ShopMoney.Amount
		q.Currency = raw.TotalPriceSet.ShopMoney.CurrencyCode
	}
	if len(items) > 0 {
		q.QuoteNumber = items[0].Fields.QuoteNumber
		if q.TotalPrice == "" && q.Status != QuoteStatusPending {
			q.TotalPrice = items[0].UnitPrice
		}
	}
	if q.TotalPrice == "" {
		q.TotalPrice = defaultUnitPrice
	}
	return q, nil
}

// DeriveStatus re-derives a status from already formatted line items.
func DeriveStatus(remoteStatus string, items []LineItem) QuoteStatus {
	return deriveStatus(remoteStatus, items)
}

func deriveStatus(remoteStatus string, items []LineItem) QuoteStatus {
	if strings.EqualFold(remoteStatus, RemoteStatusCompleted) {
		return QuoteStatusCompleted
	}
	if len(items) > 0 && items[0].CustomAttributes.Value(AttrStatus) == StatusValueQuoted {
		return QuoteStatusQuoted
	}
	return QuoteStatusPending
}

func decodeRawLineItems(data json.RawMessage) ([]RawLineItem, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	switch data[0] {
	case '[':
		var items []RawLineItem
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var list rawEdgeList
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		if list.Nodes != nil {
			return list.Nodes, nil
		}
		items := make([]RawLineItem, 0, len(list.Edges))
		for _, e := range list.Edges {
			items = append(items, e.Node)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unexpected json token %q", data[0])
}

func decodeRawAttributes(data json.RawMessage) (Attributes, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Attributes{}, nil
	}
	var attrs Attributes
	if err := json.Unmarshal(data, &attrs); err != nil {
		return nil, err
	}
	for i, a := range attrs {
		if a.Key == "" {
			return nil, fmt.Errorf("attribute %d has no key", i)
		}
	}
	return attrs, nil
}

func parseRemoteTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// EncodeQuote converts a Quote back into the plain-array raw shape used by the
// snapshot cache. FormatQuote(EncodeQuote(q)) reproduces q's status.
func EncodeQuote(q Quote) (RawDraftOrder, error) {
	items := make([]RawLineItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		attrs := li.CustomAttributes
		if attrs == nil {
			attrs = Attributes{}
		}
		rawAttrs, err := json.Marshal(attrs)
		if err != nil {
			return RawDraftOrder{}, err
		}
		items = append(items, RawLineItem{
			ID:                   li.ID,
			Title:                li.Title,
			Quantity:             li.Quantity,
			OriginalUnitPriceSet: &RawMoneyBag{ShopMoney: RawMoney{Amount: li.UnitPrice, CurrencyCode: q.Currency}},
			CustomAttributes:     rawAttrs,
		})
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return RawDraftOrder{}, err
	}

	raw := RawDraftOrder{
		ID:            q.ID,
		Name:          q.DisplayName,
		Email:         q.CustomerEmail,
		Note:          q.Note,
		InvoiceURL:    q.InvoiceURL,
		TotalPriceSet: &RawMoneyBag{ShopMoney: RawMoney{Amount: q.TotalPrice, CurrencyCode: q.Currency}},
		LineItems:     rawItems,
	}
	if q.Status == QuoteStatusCompleted {
		raw.Status = RemoteStatusCompleted
	}
	if !q.CreatedAt.IsZero() {
		raw.CreatedAt = q.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !q.UpdatedAt.IsZero() {
		raw.UpdatedAt = q.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return raw, nil
}
