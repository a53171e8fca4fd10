package response

import (
	"time"

	"print3d_quote/internal/domain/entities"
)

type AttributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ParametersResponse struct {
	Material  string `json:"material,omitempty"`
	Finish    string `json:"finish,omitempty"`
	Precision string `json:"precision,omitempty"`
	Color     string `json:"color,omitempty"`
	Infill    string `json:"infill,omitempty"`
	Tolerance string `json:"tolerance,omitempty"`
}

type LineItemResponse struct {
	ID           string              `json:"id,omitempty"`
	Title        string              `json:"title"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    string              `json:"unit_price"`
	FileID       string              `json:"file_id,omitempty"`
	FileName     string              `json:"file_name,omitempty"`
	AssetID      string              `json:"asset_id,omitempty"`
	AssetURL     string              `json:"asset_url,omitempty"`
	Parameters   ParametersResponse  `json:"parameters"`
	Status       string              `json:"status,omitempty"`
	QuotedAmount string              `json:"quoted_amount,omitempty"`
	QuotedAt     string              `json:"quoted_at,omitempty"`
	QuoteNote    string              `json:"quote_note,omitempty"`
	Additional   map[string]string   `json:"additional_attributes,omitempty"`
	Attributes   []AttributeResponse `json:"attributes"`
}

type QuoteResponse struct {
	ID            string             `json:"id"`
	DisplayName   string             `json:"display_name"`
	QuoteNumber   string             `json:"quote_number,omitempty"`
	CustomerEmail string             `json:"customer_email"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Status        string             `json:"status"`
	TotalPrice    string             `json:"total_price"`
	Currency      string             `json:"currency,omitempty"`
	QuotedAmount  string             `json:"quoted_amount,omitempty"`
	Note          string             `json:"note"`
	InvoiceURL    string             `json:"invoice_url,omitempty"`
	LineItems     []LineItemResponse `json:"line_items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:            q.ID,
		DisplayName:   q.DisplayName,
		QuoteNumber:   q.QuoteNumber,
		CustomerEmail: q.CustomerEmail,
		Status:        string(q.Status),
		TotalPrice:    q.TotalPrice,
		Currency:      q.Currency,
		Note:          q.Note,
		InvoiceURL:    q.InvoiceURL,
		LineItems:     make([]LineItemResponse, 0, len(q.LineItems)),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if len(q.LineItems) > 0 {
		res.CustomerName = q.LineItems[0].Fields.CustomerName
		res.QuotedAmount = q.LineItems[0].Fields.QuotedAmount
	}
	for _, li := range q.LineItems {
		res.LineItems = append(res.LineItems, fromLineItem(li))
	}
	return res
}

func fromLineItem(li entities.LineItem) LineItemResponse {
	f := li.Fields
	attrs := make([]AttributeResponse, 0, len(li.CustomAttributes))
	for _, a := range li.CustomAttributes {
		attrs = append(attrs, AttributeResponse{Key: a.Key, Value: a.Value})
	}
	return LineItemResponse{
		ID:        li.ID,
		Title:     li.Title,
		Quantity:  li.Quantity,
		UnitPrice: li.UnitPrice,
		FileID:    f.FileID,
		FileName:  f.FileName,
		AssetID:   f.AssetID,
		AssetURL:  f.AssetURL,
		Parameters: ParametersResponse{
			Material:  f.Parameters.Material,
			Finish:    f.Parameters.Finish,
			Precision: f.Parameters.Precision,
			Color:     f.Parameters.Color,
			Infill:    f.Parameters.Infill,
			Tolerance: f.Parameters.Tolerance,
		},
		Status:       f.Status,
		QuotedAmount: f.QuotedAmount,
		QuotedAt:     f.QuotedAt,
		QuoteNote:    f.QuoteNote,
		Additional:   f.AdditionalAttributes,
		Attributes:   attrs,
	}
}

type QuoteListResponse struct {
	Items        []QuoteResponse `json:"items"`
	Total        int             `json:"total"`
	PendingCount int             `json:"pending_count"`
	QuotedCount  int             `json:"quoted_count"`
}

func FromQuoteList(l entities.QuoteList) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(l.Items))
	for _, q := range l.Items {
		items = append(items, FromQuote(q))
	}
	return QuoteListResponse{
		Items:        items,
		Total:        l.Total,
		PendingCount: l.PendingCount,
		QuotedCount:  l.QuotedCount,
	}
}

type CreatedQuoteResponse struct {
	QuoteID     string `json:"quote_id"`
	RemoteID    string `json:"remote_id"`
	DisplayName string `json:"display_name"`
	InvoiceURL  string `json:"invoice_url,omitempty"`
}

type SubmitQuoteResponse struct {
	Upload UploadBatchResponse   `json:"upload"`
	Quote  *CreatedQuoteResponse `json:"quote"`
}

func FromSubmitResult(r entities.SubmitResult) SubmitQuoteResponse {
	res := SubmitQuoteResponse{Upload: FromUploadBatch(r.Upload)}
	if r.Quote != nil {
		res.Quote = &CreatedQuoteResponse{
			QuoteID:     r.Quote.QuoteID,
			RemoteID:    r.Quote.RemoteID,
			DisplayName: r.Quote.DisplayName,
			InvoiceURL:  r.Quote.InvoiceURL,
		}
	}
	return res
}

type DeleteQuoteResponse struct {
	DeletedID string `json:"deleted_id"`
}
