package interfaces

import (
	"context"

	"print3d_quote/internal/domain/entities"
)

// IUploadTransferer sends file bytes to an ephemeral upload slot.
type IUploadTransferer interface {
	Transfer(ctx context.Context, transport entities.UploadTransport, file entities.PreparedFile) error
}
