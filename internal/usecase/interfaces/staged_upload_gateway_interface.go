package interfaces

import (
	"context"

	"print3d_quote/internal/domain/entities"
)

// IStagedUploadGateway abstracts the platform's two-phase file API.
//
// CreateStagedUploads returns one outcome per request, in request order. A
// returned error means the whole call failed and no outcome is usable.
type IStagedUploadGateway interface {
	CreateStagedUploads(ctx context.Context, requests []entities.StagedUploadRequest) ([]entities.StagedUploadOutcome, error)
	CreateFile(ctx context.Context, request entities.FileCreateRequest) (entities.Asset, error)
}
