package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultUploadConcurrency = 3
	defaultUploadStepTimeout = 60 * time.Second
)

// IUploadUseCase runs the staged upload pipeline for a batch of files.
//
// Per file: Requested -> SlotIssued -> Transferred -> Registered. Files are
// independent; the batch itself only fails when it cannot start at all (for
// example when the remote platform is not configured).
type IUploadUseCase interface {
	UploadBatch(ctx context.Context, files []entities.UploadFile) (entities.UploadBatchResult, error)
}

type UploadOptions struct {
	MaxConcurrency int
	StepTimeout    time.Duration
	RemoteRPS      float64
	RemoteBurst    int
	Metrics        interfaces.IUploadMetrics
}

type UploadUseCase struct {
	gateway        interfaces.IStagedUploadGateway
	transferer     interfaces.IUploadTransferer
	limiter        *rate.Limiter
	maxConcurrency int
	stepTimeout    time.Duration
	metrics        interfaces.IUploadMetrics
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(gateway interfaces.IStagedUploadGateway, transferer interfaces.IUploadTransferer, opts UploadOptions) *UploadUseCase {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = defaultUploadConcurrency
	}
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = defaultUploadStepTimeout
	}
	limit := rate.Inf
	if opts.RemoteRPS > 0 {
		limit = rate.Limit(opts.RemoteRPS)
	}
	if opts.RemoteBurst <= 0 {
		opts.RemoteBurst = opts.MaxConcurrency
	}
	return &UploadUseCase{
		gateway:        gateway,
		transferer:     transferer,
		limiter:        rate.NewLimiter(limit, opts.RemoteBurst),
		maxConcurrency: opts.MaxConcurrency,
		stepTimeout:    opts.StepTimeout,
		metrics:        opts.Metrics,
	}
}

func (u *UploadUseCase) UploadBatch(ctx context.Context, files []entities.UploadFile) (entities.UploadBatchResult, error) {
	batchID := uuid.NewString()
	log.Printf("[upload][usecase] batch start batch_id=%s files=%d", batchID, len(files))

	results := make([]entities.UploadFileResult, len(files))
	prepared := make([]*entities.PreparedFile, len(files))
	pending := make([]int, 0, len(files))

	for i, f := range files {
		clientID := strings.TrimSpace(f.ClientID)
		if clientID == "" {
			clientID = uuid.NewString()
		}
		results[i] = entities.UploadFileResult{
			Index:    i,
			ClientID: clientID,
			FileName: f.FileName,
			Step:     entities.UploadStepRequested,
		}
		pf, err := prepareUploadFile(f)
		if err != nil {
			u.fail(batchID, &results[i], err)
			continue
		}
		pf.ClientID = clientID
		prepared[i] = pf
		pending = append(pending, i)
	}

	slots, err := u.requestSlots(ctx, batchID, prepared, pending, results)
	if err != nil {
		return entities.UploadBatchResult{}, err
	}

	var g errgroup.Group
	g.SetLimit(u.maxConcurrency)
	for _, idx := range pending {
		slot := slots[idx]
		if slot == nil {
			continue
		}
		g.Go(func() error {
			u.transferAndRegister(ctx, batchID, *slot, prepared[idx], &results[idx])
			return nil
		})
	}
	_ = g.Wait()

	batch := entities.UploadBatchResult{BatchID: batchID, PerFile: results}
	for _, r := range results {
		if r.Success {
			batch.SuccessCount++
		} else {
			batch.FailureCount++
		}
		if u.metrics != nil {
			u.metrics.ObserveFile(r)
		}
	}
	log.Printf("[upload][usecase] batch done batch_id=%s success=%d failure=%d", batchID, batch.SuccessCount, batch.FailureCount)
	return batch, nil
}

// requestSlots issues one batched slot request for every prepared file. Only a
// configuration error is returned; any other failure is recorded per file.
func (u *UploadUseCase) requestSlots(ctx context.Context, batchID string, prepared []*entities.PreparedFile, pending []int, results []entities.UploadFileResult) (map[int]*entities.UploadSlot, error) {
	slots := make(map[int]*entities.UploadSlot, len(pending))
	if len(pending) == 0 {
		return slots, nil
	}

	requests := make([]entities.StagedUploadRequest, 0, len(pending))
	for _, idx := range pending {
		pf := prepared[idx]
		requests = append(requests, entities.StagedUploadRequest{
			FileName: pf.FileName,
			MimeType: pf.MimeType,
			FileSize: int64(len(pf.Bytes)),
		})
	}

	sctx, cancel := context.WithTimeout(ctx, u.stepTimeout)
	defer cancel()

	var outcomes []entities.StagedUploadOutcome
	err := u.limiter.Wait(sctx)
	if err == nil {
		outcomes, err = u.gateway.CreateStagedUploads(sctx, requests)
	}
	if err != nil {
		if errors.Is(err, entities.ErrConfiguration) {
			log.Printf("[upload][usecase] batch cannot start batch_id=%s err=%v", batchID, err)
			return nil, err
		}
		for _, idx := range pending {
			u.fail(batchID, &results[idx], entities.WrapError(entities.KindSlotCreationFailed, "slot request failed", err))
		}
		return slots, nil
	}

	for j, idx := range pending {
		if j >= len(outcomes) {
			u.fail(batchID, &results[idx], entities.NewError(entities.KindSlotCreationFailed, "no slot returned for file"))
			continue
		}
		o := outcomes[j]
		if o.Err != nil || o.Slot == nil {
			u.fail(batchID, &results[idx], entities.WrapError(entities.KindSlotCreationFailed, "slot request rejected", o.Err))
			continue
		}
		slots[idx] = o.Slot
		results[idx].Step = entities.UploadStepSlotIssued
	}
	return slots, nil
}

func (u *UploadUseCase) transferAndRegister(ctx context.Context, batchID string, slot entities.UploadSlot, file *entities.PreparedFile, res *entities.UploadFileResult) {
	transport := entities.DetectTransport(slot, file.MimeType)

	if err := u.transfer(ctx, transport, file); err != nil {
		u.fail(batchID, res, err)
		return
	}
	res.Step = entities.UploadStepTransferred
	res.BytesSent = int64(len(file.Bytes))

	asset, err := u.register(ctx, slot, file)
	if err != nil {
		u.fail(batchID, res, entities.WrapError(entities.KindRegistrationFailed, "asset registration failed", err))
		return
	}
	res.Step = entities.UploadStepRegistered
	res.Success = true
	res.Asset = &asset
	if asset.ReportedByteSize > 0 && asset.ReportedByteSize != res.BytesSent {
		res.SizeMismatch = true
		log.Printf("[upload][usecase] size mismatch batch_id=%s file=%q sent=%d reported=%d", batchID, file.FileName, res.BytesSent, asset.ReportedByteSize)
	}
	log.Printf("[upload][usecase] file registered batch_id=%s file=%q asset_id=%s", batchID, file.FileName, asset.AssetID)
}

func (u *UploadUseCase) transfer(ctx context.Context, transport entities.UploadTransport, file *entities.PreparedFile) error {
	tctx, cancel := context.WithTimeout(ctx, u.stepTimeout)
	defer cancel()
	if err := u.limiter.Wait(tctx); err != nil {
		return entities.WrapError(entities.KindTransferFailed, "transfer not started", err)
	}
	err := u.transferer.Transfer(tctx, transport, *file)
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrTransferFailed) {
		return err
	}
	return entities.WrapError(entities.KindTransferFailed, "transfer failed", err)
}

func (u *UploadUseCase) register(ctx context.Context, slot entities.UploadSlot, file *entities.PreparedFile) (entities.Asset, error) {
	rctx, cancel := context.WithTimeout(ctx, u.stepTimeout)
	defer cancel()
	if err := u.limiter.Wait(rctx); err != nil {
		return entities.Asset{}, err
	}
	return u.gateway.CreateFile(rctx, entities.FileCreateRequest{
		ResourceURL: slot.AssetResourceURL,
		FileName:    file.FileName,
	})
}

func (u *UploadUseCase) fail(batchID string, res *entities.UploadFileResult, err error) {
	res.Success = false
	res.ErrorKind = entities.KindOf(err)
	res.Error = uploadFailureMessage(res.ErrorKind)
	var e *entities.Error
	if errors.As(err, &e) {
		res.HTTPStatus = e.HTTPStatus
		res.ResponseBody = e.Body
	}
	log.Printf("[upload][usecase] file failed batch_id=%s index=%d file=%q step=%s kind=%s err=%v", batchID, res.Index, res.FileName, res.Step, res.ErrorKind, err)
}

func uploadFailureMessage(kind entities.ErrorKind) string {
	switch kind {
	case entities.KindEmptyFile:
		return "file is empty"
	case entities.KindInvalidInput:
		return "file could not be decoded"
	case entities.KindSlotCreationFailed:
		return "upload slot could not be created"
	case entities.KindTransferFailed:
		return "file transfer was rejected"
	case entities.KindRegistrationFailed:
		return "file could not be registered"
	}
	return "upload failed"
}

// prepareUploadFile decodes the base64 payload before any network call.
func prepareUploadFile(f entities.UploadFile) (*entities.PreparedFile, error) {
	name := strings.TrimSpace(f.FileName)
	if name == "" {
		return nil, entities.NewError(entities.KindInvalidInput, "file name is required")
	}

	data := strings.TrimSpace(f.Data)
	mimeType := strings.TrimSpace(f.MimeType)
	if strings.HasPrefix(data, "data:") {
		if comma := strings.Index(data, ","); comma >= 0 {
			header := data[len("data:"):comma]
			if mimeType == "" {
				mimeType = strings.TrimSuffix(header, ";base64")
			}
			data = data[comma+1:]
		}
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(data)
	}
	if err != nil {
		return nil, entities.WrapError(entities.KindInvalidInput, fmt.Sprintf("file %q is not valid base64", name), err)
	}
	if len(raw) == 0 {
		return nil, entities.NewError(entities.KindEmptyFile, fmt.Sprintf("file %q is empty", name))
	}

	if mimeType == "" {
		mimeType = mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &entities.PreparedFile{FileName: name, MimeType: mimeType, Bytes: raw}, nil
}
