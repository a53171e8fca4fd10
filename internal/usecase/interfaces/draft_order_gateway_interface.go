package interfaces

import (
	"context"

	"print3d_quote/internal/domain/entities"
)

// IDraftOrderGateway abstracts the commerce platform's draft order API.
//
// Draft orders are the only persistent store of quotes:
//   - GetDraftOrder returns (nil, nil) when the id does not exist
//   - UpdateDraftOrder replaces the full line item set
//   - SendDraftOrderInvoice is the platform's "send notice" mutation
type IDraftOrderGateway interface {
	GetDraftOrder(ctx context.Context, id string) (*entities.RawDraftOrder, error)
	ListDraftOrders(ctx context.Context, query string, first int) ([]entities.RawDraftOrder, error)
	CreateDraftOrder(ctx context.Context, input entities.DraftOrderInput) (*entities.RawDraftOrder, error)
	UpdateDraftOrder(ctx context.Context, id string, input entities.DraftOrderInput) (*entities.RawDraftOrder, error)
	DeleteDraftOrder(ctx context.Context, id string) (string, error)
	SendDraftOrderInvoice(ctx context.Context, id string, notice entities.InvoiceNotice) (*entities.RawDraftOrder, error)
}
