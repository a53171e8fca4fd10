package commerce

import (
	"context"
	"fmt"
	"strconv"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"
)

var _ interfaces.IStagedUploadGateway = (*Client)(nil)

type stagedUploadInput struct {
	Filename   string `json:"filename"`
	MimeType   string `json:"mimeType"`
	HTTPMethod string `json:"httpMethod"`
	Resource   string `json:"resource"`
	FileSize   string `json:"fileSize"`
}

// CreateStagedUploads requests one slot per file in a single call.
//
// User errors whose field path names an input index fail only that file.
// User errors that cannot be attributed fail the whole call.
func (c *Client) CreateStagedUploads(ctx context.Context, requests []entities.StagedUploadRequest) ([]entities.StagedUploadOutcome, error) {
	inputs := make([]stagedUploadInput, 0, len(requests))
	for _, r := range requests {
		inputs = append(inputs, stagedUploadInput{
			Filename:   r.FileName,
			MimeType:   r.MimeType,
			HTTPMethod: "POST",
			Resource:   "FILE",
			FileSize:   strconv.FormatInt(r.FileSize, 10),
		})
	}

	data, userErrors, err := c.do(ctx, stagedUploadsCreateMutation, map[string]any{"input": inputs})
	if err != nil {
		return nil, err
	}

	failed := map[int][]entities.UserError{}
	for _, ue := range userErrors {
		idx, ok := inputIndex(ue.Field)
		if !ok || idx >= len(requests) {
			return nil, operationError(userErrors)
		}
		failed[idx] = append(failed[idx], ue)
	}

	var out struct {
		Payload struct {
			StagedTargets []entities.UploadSlot `json:"stagedTargets"`
		} `json:"stagedUploadsCreate"`
	}
	if err := decodeData(data, &out); err != nil {
		return nil, err
	}
	targets := out.Payload.StagedTargets
	aligned := len(targets) == len(requests)

	outcomes := make([]entities.StagedUploadOutcome, len(requests))
	next := 0
	for i := range requests {
		if errs, ok := failed[i]; ok {
			outcomes[i].Err = operationError(errs)
			if aligned {
				next++
			}
			continue
		}
		if next >= len(targets) {
			outcomes[i].Err = entities.NewError(entities.KindRemoteOperation, fmt.Sprintf("no staged target for input %d", i))
			continue
		}
		slot := targets[next]
		next++
		outcomes[i].Slot = &slot
	}
	return outcomes, nil
}

// inputIndex finds the list index in a field path such as ["input", "1", "fileSize"].
func inputIndex(field []string) (int, bool) {
	for i, f := range field {
		if f != "input" || i+1 >= len(field) {
			continue
		}
		n, err := strconv.Atoi(field[i+1])
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

type fileCreateInput struct {
	OriginalSource string `json:"originalSource"`
	ContentType    string `json:"contentType"`
	Alt            string `json:"alt,omitempty"`
}

// CreateFile registers a transferred upload as a durable file asset.
func (c *Client) CreateFile(ctx context.Context, request entities.FileCreateRequest) (entities.Asset, error) {
	data, err := c.Execute(ctx, fileCreateMutation, map[string]any{
		"files": []fileCreateInput{{OriginalSource: request.ResourceURL, ContentType: "FILE", Alt: request.FileName}},
	})
	if err != nil {
		return entities.Asset{}, err
	}
	var out struct {
		Payload struct {
			Files []struct {
				ID               string `json:"id"`
				URL              string `json:"url"`
				OriginalFileSize int64  `json:"originalFileSize"`
			} `json:"files"`
		} `json:"fileCreate"`
	}
	if err := decodeData(data, &out); err != nil {
		return entities.Asset{}, err
	}
	if len(out.Payload.Files) == 0 {
		return entities.Asset{}, entities.NewError(entities.KindRemoteOperation, "fileCreate returned no file")
	}
	f := out.Payload.Files[0]
	return entities.Asset{AssetID: f.ID, ServingURL: f.URL, ReportedByteSize: f.OriginalFileSize}, nil
}
