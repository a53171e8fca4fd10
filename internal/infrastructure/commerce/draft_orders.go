package commerce

import (
	"context"
	"log"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"
)

var _ interfaces.IDraftOrderGateway = (*Client)(nil)

type attributeInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type draftOrderLineItemInput struct {
	Title             string           `json:"title"`
	Quantity          int              `json:"quantity"`
	OriginalUnitPrice string           `json:"originalUnitPrice"`
	CustomAttributes  []attributeInput `json:"customAttributes"`
}

type draftOrderInput struct {
	Email     string                    `json:"email,omitempty"`
	Note      string                    `json:"note"`
	Tags      []string                  `json:"tags,omitempty"`
	LineItems []draftOrderLineItemInput `json:"lineItems"`
}

func toDraftOrderInput(in entities.DraftOrderInput) draftOrderInput {
	out := draftOrderInput{
		Email:     in.Email,
		Note:      in.Note,
		Tags:      in.Tags,
		LineItems: make([]draftOrderLineItemInput, 0, len(in.LineItems)),
	}
	for _, li := range in.LineItems {
		attrs := make([]attributeInput, 0, len(li.CustomAttributes))
		for _, a := range li.CustomAttributes {
			attrs = append(attrs, attributeInput{Key: a.Key, Value: a.Value})
		}
		out.LineItems = append(out.LineItems, draftOrderLineItemInput{
			Title:             li.Title,
			Quantity:          li.Quantity,
			OriginalUnitPrice: li.OriginalUnitPrice,
			CustomAttributes:  attrs,
		})
	}
	return out
}

// GetDraftOrder returns (nil, nil) when the platform knows no such id.
func (c *Client) GetDraftOrder(ctx context.Context, id string) (*entities.RawDraftOrder, error) {
	data, err := c.Execute(ctx, getDraftOrderQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	var out struct {
		DraftOrder *entities.RawDraftOrder `json:"draftOrder"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out.DraftOrder, nil
}

func (c *Client) ListDraftOrders(ctx context.Context, query string, first int) ([]entities.RawDraftOrder, error) {
	data, err := c.Execute(ctx, listDraftOrdersQuery, map[string]any{"first": first, "query": query})
	if err != nil {
		return nil, err
	}
	var out struct {
		DraftOrders struct {
			Edges []struct {
				Node entities.RawDraftOrder `json:"node"`
			} `json:"edges"`
		} `json:"draftOrders"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	orders := make([]entities.RawDraftOrder, 0, len(out.DraftOrders.Edges))
	for _, e := range out.DraftOrders.Edges {
		orders = append(orders, e.Node)
	}
	log.Printf("[commerce][draft_orders] list query=%q returned=%d", query, len(orders))
	return orders, nil
}

func (c *Client) CreateDraftOrder(ctx context.Context, input entities.DraftOrderInput) (*entities.RawDraftOrder, error) {
	data, err := c.Execute(ctx, createDraftOrderMutation, map[string]any{"input": toDraftOrderInput(input)})
	if err != nil {
		return nil, err
	}
	var out struct {
		Payload struct {
			DraftOrder *entities.RawDraftOrder `json:"draftOrder"`
		} `json:"draftOrderCreate"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out.Payload.DraftOrder, nil
}

// UpdateDraftOrder replaces the full line item set of the draft order.
func (c *Client) UpdateDraftOrder(ctx context.Context, id string, input entities.DraftOrderInput) (*entities.RawDraftOrder, error) {
	data, err := c.Execute(ctx, updateDraftOrderMutation, map[string]any{"id": id, "input": toDraftOrderInput(input)})
	if err != nil {
		return nil, err
	}
	var out struct {
		Payload struct {
			DraftOrder *entities.RawDraftOrder `json:"draftOrder"`
		} `json:"draftOrderUpdate"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out.Payload.DraftOrder, nil
}

func (c *Client) DeleteDraftOrder(ctx context.Context, id string) (string, error) {
	data, err := c.Execute(ctx, deleteDraftOrderMutation, map[string]any{"input": map[string]string{"id": id}})
	if err != nil {
		return "", err
	}
	var out struct {
		Payload struct {
			DeletedID string `json:"deletedId"`
		} `json:"draftOrderDelete"`
	}
	if err := decodeData(data, &out); err != nil {
		return "", err
	}
	return out.Payload.DeletedID, nil
}

func (c *Client) SendDraftOrderInvoice(ctx context.Context, id string, notice entities.InvoiceNotice) (*entities.RawDraftOrder, error) {
	email := map[string]string{"to": notice.To}
	if notice.Subject != "" {
		email["subject"] = notice.Subject
	}
	if notice.CustomMessage != "" {
		email["customMessage"] = notice.CustomMessage
	}
	data, err := c.Execute(ctx, sendDraftOrderInvoiceMutation, map[string]any{"id": id, "email": email})
	if err != nil {
		return nil, err
	}
	var out struct {
		Payload struct {
			DraftOrder *entities.RawDraftOrder `json:"draftOrder"`
		} `json:"draftOrderInvoiceSend"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	return out.Payload.DraftOrder, nil
}
