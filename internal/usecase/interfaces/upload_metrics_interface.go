package interfaces

import "print3d_quote/internal/domain/entities"

// IUploadMetrics observes per-file upload outcomes.
type IUploadMetrics interface {
	ObserveFile(result entities.UploadFileResult)
}
