package response

import "print3d_quote/internal/domain/entities"

type UploadFileResponse struct {
	Index        int    `json:"index"`
	ClientID     string `json:"client_id"`
	FileName     string `json:"file_name"`
	Success      bool   `json:"success"`
	Step         string `json:"step"`
	AssetID      string `json:"asset_id,omitempty"`
	AssetURL     string `json:"asset_url,omitempty"`
	ReportedSize int64  `json:"reported_size,omitempty"`
	BytesSent    int64  `json:"bytes_sent"`
	SizeMismatch bool   `json:"size_mismatch"`
	ErrorCode    string `json:"error_code,omitempty"`
	Error        string `json:"error,omitempty"`
}

type UploadBatchResponse struct {
	BatchID      string               `json:"batch_id"`
	Files        []UploadFileResponse `json:"files"`
	SuccessCount int                  `json:"success_count"`
	FailureCount int                  `json:"failure_count"`
}

func FromUploadBatch(r entities.UploadBatchResult) UploadBatchResponse {
	files := make([]UploadFileResponse, 0, len(r.PerFile))
	for _, f := range r.PerFile {
		item := UploadFileResponse{
			Index:        f.Index,
			ClientID:     f.ClientID,
			FileName:     f.FileName,
			Success:      f.Success,
			Step:         string(f.Step),
			BytesSent:    f.BytesSent,
			SizeMismatch: f.SizeMismatch,
			ErrorCode:    string(f.ErrorKind),
			Error:        f.Error,
		}
		if f.Asset != nil {
			item.AssetID = f.Asset.AssetID
			item.AssetURL = f.Asset.ServingURL
			item.ReportedSize = f.Asset.ReportedByteSize
		}
		files = append(files, item)
	}
	return UploadBatchResponse{
		BatchID:      r.BatchID,
		Files:        files,
		SuccessCount: r.SuccessCount,
		FailureCount: r.FailureCount,
	}
}
