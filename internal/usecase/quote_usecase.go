package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit     = 50
	maxListLimit         = 250
	defaultNotifyTimeout = 5 * time.Second

	createdNoteTemplate = "3D打印询价 %s | 客户: %s | 文件: %s"
	quotedNoteTemplate  = "已报价 | 询价单号: %s | 报价金额: %s"
	noticeSubject       = "您的3D打印报价 %s"
	noticeMessage       = "询价单号 %s 的报价金额为 %s，请通过链接查看并完成付款。"
)

// IQuoteUseCase owns the quote lifecycle on top of remote draft orders.
type IQuoteUseCase interface {
	Get(ctx context.Context, id string, auth entities.AuthContext) (entities.Quote, error)
	List(ctx context.Context, auth entities.AuthContext, status entities.QuoteStatus, limit int) (entities.QuoteList, error)
	Create(ctx context.Context, input entities.QuoteInput, assets map[string]entities.Asset) (entities.CreatedQuote, error)
	Submit(ctx context.Context, input entities.QuoteInput, files []entities.UploadFile) (entities.SubmitResult, error)
	UpdateQuoteAmount(ctx context.Context, id string, update entities.QuoteAmountUpdate) (entities.Quote, error)
	Delete(ctx context.Context, id string, auth entities.AuthContext) (string, error)
	SendNotice(ctx context.Context, id string, auth entities.AuthContext) (entities.Quote, error)
}

// QuoteOptions carries the optional collaborators. A nil Cache disables the
// snapshot cache, a nil Publisher disables notifications.
type QuoteOptions struct {
	Cache         interfaces.IQuoteCache
	Publisher     interfaces.INotificationPublisher
	NotifyTimeout time.Duration
	Now           func() time.Time
}

type QuoteUseCase struct {
	gateway       interfaces.IDraftOrderGateway
	uploads       IUploadUseCase
	auth          IAuthorizationService
	cache         interfaces.IQuoteCache
	publisher     interfaces.INotificationPublisher
	notifyTimeout time.Duration
	now           func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(gateway interfaces.IDraftOrderGateway, uploads IUploadUseCase, auth IAuthorizationService, opts QuoteOptions) *QuoteUseCase {
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = defaultNotifyTimeout
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &QuoteUseCase{
		gateway:       gateway,
		uploads:       uploads,
		auth:          auth,
		cache:         opts.Cache,
		publisher:     opts.Publisher,
		notifyTimeout: opts.NotifyTimeout,
		now:           opts.Now,
	}
}

func (u *QuoteUseCase) Get(ctx context.Context, id string, auth entities.AuthContext) (entities.Quote, error) {
	id, err := normalizeQuoteID(id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !auth.IsAdmin && auth.Email == "" {
		return entities.Quote{}, entities.NewError(entities.KindForbidden, "an email is required to read a quote")
	}

	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q == nil {
		return entities.Quote{}, notFound(id)
	}
	if err := u.auth.VerifyOwnership(auth.Email, q.CustomerEmail, auth.IsAdmin); err != nil {
		log.Printf("[quote][usecase] get denied id=%s requester=%s", id, auth.Email)
		return entities.Quote{}, err
	}
	return *q, nil
}

func (u *QuoteUseCase) List(ctx context.Context, auth entities.AuthContext, status entities.QuoteStatus, limit int) (entities.QuoteList, error) {
	auth.Email = entities.NormalizeEmail(auth.Email)
	if !auth.IsAdmin {
		if err := u.auth.ValidateEmail(auth.Email); err != nil {
			return entities.QuoteList{}, err
		}
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	query := "tag:" + entities.QuoteTag
	if !auth.IsAdmin {
		query += fmt.Sprintf(` AND email:"%s"`, strings.ReplaceAll(auth.Email, `"`, `\"`))
	}

	raws, err := u.gateway.ListDraftOrders(ctx, query, limit)
	if err != nil {
		log.Printf("[quote][usecase] list failed admin=%t err=%v", auth.IsAdmin, err)
		return entities.QuoteList{}, err
	}

	out := entities.QuoteList{Items: []entities.Quote{}}
	for i := range raws {
		q, err := entities.FormatQuote(&raws[i])
		if err != nil {
			log.Printf("[quote][usecase] list skipping unreadable draft order id=%s err=%v", raws[i].ID, err)
			continue
		}
		if q == nil {
			continue
		}
		if !auth.IsAdmin && q.CustomerEmail != auth.Email {
			log.Printf("[quote][usecase] list dropping foreign draft order id=%s owner=%s requester=%s", q.ID, q.CustomerEmail, auth.Email)
			continue
		}
		out.Total++
		switch q.Status {
		case entities.QuoteStatusPending:
			out.PendingCount++
		case entities.QuoteStatusQuoted:
			out.QuotedCount++
		}
		if status == "" || q.Status == status {
			out.Items = append(out.Items, *q)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, input entities.QuoteInput, assets map[string]entities.Asset) (entities.CreatedQuote, error) {
	if err := u.auth.ValidateEmail(input.CustomerEmail); err != nil {
		return entities.CreatedQuote{}, err
	}
	email := entities.NormalizeEmail(input.CustomerEmail)
	quoteNumber := newQuoteNumber(u.now())

	var (
		lineItems []entities.DraftOrderLineItemInput
		fileNames []string
		notified  []entities.NotificationFile
	)
	for _, f := range input.Files {
		asset, ok := assets[f.ClientID]
		if !ok {
			log.Printf("[quote][usecase] create skipping file without asset quote_number=%s client_id=%s file=%q", quoteNumber, f.ClientID, f.FileName)
			continue
		}
		b := entities.NewAttributeBuilder().Set(entities.AttrQuoteNumber, quoteNumber)
		if len(lineItems) == 0 {
			b.SetIfPresent(entities.AttrCustomerName, input.CustomerName).
				SetIfPresent(entities.AttrCustomerNote, input.Note).
				SetIfPresent(entities.AttrPhone, input.Phone).
				SetIfPresent(entities.AttrCompany, input.Company).
				Set(entities.AttrStatus, entities.StatusValuePending)
		}
		b.SetIfPresent(entities.AttrFileID, f.ClientID).
			SetIfPresent(entities.AttrFileName, f.FileName).
			SetIfPresent(entities.AttrAssetID, asset.AssetID).
			SetIfPresent(entities.AttrAssetURL, asset.ServingURL).
			SetParameters(f.Parameters)
		for _, k := range sortedExtraKeys(f.Extra) {
			b.SetIfPresent(k, f.Extra[k])
		}

		qty := f.Quantity
		if qty <= 0 {
			qty = 1
		}
		lineItems = append(lineItems, entities.DraftOrderLineItemInput{
			Title:             f.FileName,
			Quantity:          qty,
			OriginalUnitPrice: "0.00",
			CustomAttributes:  b.Attributes(),
		})
		fileNames = append(fileNames, f.FileName)
		notified = append(notified, entities.NotificationFile{
			FileName:   f.FileName,
			AssetURL:   asset.ServingURL,
			Quantity:   qty,
			Parameters: f.Parameters,
		})
	}
	if len(lineItems) == 0 {
		return entities.CreatedQuote{}, entities.NewError(entities.KindInvalidInput, "no uploaded file to quote")
	}

	log.Printf("[quote][usecase] create start quote_number=%s email=%s line_items=%d", quoteNumber, email, len(lineItems))
	raw, err := u.gateway.CreateDraftOrder(ctx, entities.DraftOrderInput{
		Email:     email,
		Note:      fmt.Sprintf(createdNoteTemplate, quoteNumber, input.CustomerName, strings.Join(fileNames, ", ")),
		Tags:      []string{entities.QuoteTag},
		LineItems: lineItems,
	})
	if err != nil {
		log.Printf("[quote][usecase] create failed quote_number=%s err=%v", quoteNumber, err)
		return entities.CreatedQuote{}, err
	}
	if raw == nil {
		return entities.CreatedQuote{}, entities.NewError(entities.KindRemoteOperation, "draft order create returned no object")
	}
	u.remember(ctx, raw)

	created := entities.CreatedQuote{
		QuoteID:     quoteNumber,
		RemoteID:    raw.ID,
		DisplayName: raw.Name,
		InvoiceURL:  raw.InvoiceURL,
	}
	u.notify(ctx, entities.QuoteNotification{
		Event:         entities.NotificationQuoteSubmitted,
		QuoteID:       quoteNumber,
		RemoteID:      raw.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: email,
		Files:         notified,
	})
	log.Printf("[quote][usecase] create done quote_number=%s remote_id=%s", quoteNumber, raw.ID)
	return created, nil
}

// Submit uploads the files and creates a quote from the ones that became
// assets. Files that failed stay reported in the upload result; when none
// succeeded no quote is created and Quote is nil.
func (u *QuoteUseCase) Submit(ctx context.Context, input entities.QuoteInput, files []entities.UploadFile) (entities.SubmitResult, error) {
	if err := u.auth.ValidateEmail(input.CustomerEmail); err != nil {
		return entities.SubmitResult{}, err
	}
	files, input.Files = assignClientIDs(files, input.Files)

	batch, err := u.uploads.UploadBatch(ctx, files)
	if err != nil {
		return entities.SubmitResult{}, err
	}
	result := entities.SubmitResult{Upload: batch}

	assets := batch.AssetsByClientID()
	if len(assets) == 0 {
		log.Printf("[quote][usecase] submit without usable files batch_id=%s failures=%d", batch.BatchID, batch.FailureCount)
		return result, nil
	}

	created, err := u.Create(ctx, input, assets)
	if err != nil {
		return result, err
	}
	result.Quote = &created
	return result, nil
}

// UpdateQuoteAmount moves a quote to quoted. It is a read-modify-write of the
// whole draft order; concurrent updates are last-writer-wins.
func (u *QuoteUseCase) UpdateQuoteAmount(ctx context.Context, id string, update entities.QuoteAmountUpdate) (entities.Quote, error) {
	id, err := normalizeQuoteID(id)
	if err != nil {
		return entities.Quote{}, err
	}
	amount, err := parseAmount(update.Amount)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := u.fetch(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q == nil {
		return entities.Quote{}, notFound(id)
	}
	if len(q.LineItems) == 0 {
		log.Printf("[quote][usecase] update refused, no line items id=%s", id)
		return entities.Quote{}, entities.NewError(entities.KindCorruptQuote, fmt.Sprintf("quote %q has no line items", id))
	}
	if q.Status == entities.QuoteStatusCompleted {
		log.Printf("[quote][usecase] update refused, quote completed id=%s", id)
		return entities.Quote{}, entities.NewError(entities.KindInvalidInput, fmt.Sprintf("quote %q is already completed", id))
	}

	items := make([]entities.DraftOrderLineItemInput, 0, len(q.LineItems))
	for i, li := range q.LineItems {
		item := entities.DraftOrderLineItemInput{
			Title:             li.Title,
			Quantity:          li.Quantity,
			OriginalUnitPrice: li.UnitPrice,
			CustomAttributes:  li.CustomAttributes,
		}
		if i == 0 {
			item.OriginalUnitPrice = amount
			item.CustomAttributes = entities.NewAttributeBuilder().
				SetAll(li.CustomAttributes.Without(entities.QuoteTransitionKeys...)).
				Set(entities.AttrStatus, entities.StatusValueQuoted).
				Set(entities.AttrQuotedAmount, amount).
				Set(entities.AttrQuotedAt, u.now().Format(time.RFC3339)).
				SetIfPresent(entities.AttrQuoteNote, strings.TrimSpace(update.Note)).
				SetIfPresent(entities.AttrQuotedBy, entities.NormalizeEmail(update.SenderEmail)).
				Attributes()
		}
		items = append(items, item)
	}

	log.Printf("[quote][usecase] update amount start id=%s amount=%s", id, amount)
	raw, err := u.gateway.UpdateDraftOrder(ctx, id, entities.DraftOrderInput{
		Email:     q.CustomerEmail,
		Note:      fmt.Sprintf(quotedNoteTemplate, q.QuoteNumber, amount),
		Tags:      []string{entities.QuoteTag},
		LineItems: items,
	})
	if err != nil {
		log.Printf("[quote][usecase] update amount failed id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if raw == nil {
		return entities.Quote{}, entities.NewError(entities.KindRemoteOperation, "draft order update returned no object")
	}
	updated, err := entities.FormatQuote(raw)
	if err != nil {
		return entities.Quote{}, err
	}
	u.put(ctx, updated)

	var customerName string
	if len(updated.LineItems) > 0 {
		customerName = updated.LineItems[0].Fields.CustomerName
	}
	u.notify(ctx, entities.QuoteNotification{
		Event:         entities.NotificationQuoteQuoted,
		QuoteID:       updated.QuoteNumber,
		RemoteID:      updated.ID,
		CustomerName:  customerName,
		CustomerEmail: updated.CustomerEmail,
		Amount:        amount,
	})
	log.Printf("[quote][usecase] update amount done id=%s status=%s", id, updated.Status)
	return *updated, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string, auth entities.AuthContext) (string, error) {
	id, err := normalizeQuoteID(id)
	if err != nil {
		return "", err
	}
	if !auth.IsAdmin {
		if auth.Email == "" {
			return "", entities.NewError(entities.KindForbidden, "an email is required to delete a quote")
		}
		q, err := u.fetch(ctx, id)
		if err != nil {
			return "", err
		}
		if q == nil {
			return "", notFound(id)
		}
		if err := u.auth.VerifyOwnership(auth.Email, q.CustomerEmail, false); err != nil {
			log.Printf("[quote][usecase] delete denied id=%s requester=%s", id, auth.Email)
			return "", err
		}
	}

	deleted, err := u.gateway.DeleteDraftOrder(ctx, id)
	if err != nil {
		log.Printf("[quote][usecase] delete failed id=%s err=%v", id, err)
		return "", err
	}
	if u.cache != nil {
		if err := u.cache.Delete(ctx, id); err != nil {
			log.Printf("[quote][cache] delete failed id=%s err=%v", id, err)
		}
	}
	log.Printf("[quote][usecase] deleted id=%s admin=%t", deleted, auth.IsAdmin)
	return deleted, nil
}

// SendNotice asks the remote platform to email the customer the quote link.
func (u *QuoteUseCase) SendNotice(ctx context.Context, id string, auth entities.AuthContext) (entities.Quote, error) {
	id, err := normalizeQuoteID(id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !auth.IsAdmin {
		return entities.Quote{}, entities.NewError(entities.KindForbidden, "only admins can send quote notices")
	}

	q, err := u.fetch(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q == nil {
		return entities.Quote{}, notFound(id)
	}
	if err := u.auth.ValidateEmail(q.CustomerEmail); err != nil {
		return entities.Quote{}, err
	}

	number := q.QuoteNumber
	if number == "" {
		number = q.DisplayName
	}
	raw, err := u.gateway.SendDraftOrderInvoice(ctx, id, entities.InvoiceNotice{
		To:            q.CustomerEmail,
		Subject:       fmt.Sprintf(noticeSubject, number),
		CustomMessage: fmt.Sprintf(noticeMessage, number, q.TotalPrice),
	})
	if err != nil {
		log.Printf("[quote][usecase] send notice failed id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if raw == nil {
		return *q, nil
	}
	sent, err := entities.FormatQuote(raw)
	if err != nil {
		return entities.Quote{}, err
	}
	u.put(ctx, sent)
	log.Printf("[quote][usecase] notice sent id=%s to=%s", id, q.CustomerEmail)
	return *sent, nil
}

// load reads through the snapshot cache.
func (u *QuoteUseCase) load(ctx context.Context, id string) (*entities.Quote, error) {
	if u.cache != nil {
		raw, err := u.cache.Get(ctx, id)
		if err != nil {
			log.Printf("[quote][cache] get failed id=%s err=%v", id, err)
		} else if raw != nil {
			q, err := entities.FormatQuote(raw)
			if err == nil && q != nil {
				return q, nil
			}
			log.Printf("[quote][cache] unreadable snapshot id=%s err=%v", id, err)
		}
	}
	q, err := u.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	u.put(ctx, q)
	return q, nil
}

// fetch always goes to the remote platform.
func (u *QuoteUseCase) fetch(ctx context.Context, id string) (*entities.Quote, error) {
	raw, err := u.gateway.GetDraftOrder(ctx, id)
	if err != nil {
		log.Printf("[quote][usecase] fetch failed id=%s err=%v", id, err)
		return nil, err
	}
	q, err := entities.FormatQuote(raw)
	if err != nil {
		log.Printf("[quote][usecase] unreadable draft order id=%s err=%v", id, err)
		return nil, err
	}
	return q, nil
}

func (u *QuoteUseCase) remember(ctx context.Context, raw *entities.RawDraftOrder) {
	q, err := entities.FormatQuote(raw)
	if err != nil {
		log.Printf("[quote][usecase] created draft order unreadable id=%s err=%v", raw.ID, err)
		return
	}
	u.put(ctx, q)
}

func (u *QuoteUseCase) put(ctx context.Context, q *entities.Quote) {
	if u.cache == nil || q == nil {
		return
	}
	if err := u.cache.Put(ctx, *q); err != nil {
		log.Printf("[quote][cache] put failed id=%s err=%v", q.ID, err)
	}
}

func (u *QuoteUseCase) notify(ctx context.Context, n entities.QuoteNotification) {
	if u.publisher == nil {
		return
	}
	n.EventID = uuid.NewString()
	n.OccurredAt = u.now()
	go func() {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.notifyTimeout)
		defer cancel()
		if err := u.publisher.Publish(nctx, n); err != nil {
			log.Printf("[quote][notify] publish failed event=%s quote_id=%s err=%v", n.Event, n.QuoteID, err)
		}
	}()
}

// assignClientIDs makes the client ids of a batch unique. Blank and repeated
// ids are replaced, and input file i always carries the id of upload file i,
// so an asset can only be matched to the file that produced it.
func assignClientIDs(files []entities.UploadFile, inputs []entities.QuoteFileInput) ([]entities.UploadFile, []entities.QuoteFileInput) {
	outFiles := make([]entities.UploadFile, len(files))
	copy(outFiles, files)
	outInputs := make([]entities.QuoteFileInput, len(inputs))
	copy(outInputs, inputs)

	seen := make(map[string]struct{}, len(outFiles))
	for i := range outFiles {
		id := strings.TrimSpace(outFiles[i].ClientID)
		if _, dup := seen[id]; id == "" || dup {
			if id != "" {
				log.Printf("[quote][usecase] replacing duplicate client id index=%d client_id=%s", i, id)
			}
			id = uuid.NewString()
		}
		seen[id] = struct{}{}
		outFiles[i].ClientID = id
		if i < len(outInputs) {
			outInputs[i].ClientID = id
		}
	}
	for i := len(outFiles); i < len(outInputs); i++ {
		// no upload file, never matches an asset
		outInputs[i].ClientID = ""
	}
	return outFiles, outInputs
}

func normalizeQuoteID(id string) (string, error) {
	id = entities.DraftOrderGID(id)
	if id == "" {
		return "", entities.NewError(entities.KindInvalidInput, "quote id is required")
	}
	return id, nil
}

func notFound(id string) error {
	return entities.NewError(entities.KindNotFound, fmt.Sprintf("quote %q not found", id))
}

func parseAmount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", entities.WrapError(entities.KindInvalidInput, "amount is not a number", err)
	}
	if d.IsNegative() {
		return "", entities.NewError(entities.KindInvalidInput, "amount must not be negative")
	}
	return d.StringFixed(2), nil
}

// newQuoteNumber is Q + YYYYMMDDhhmmss + milliseconds.
func newQuoteNumber(t time.Time) string {
	return "Q" + strings.Replace(t.Format("20060102150405.000"), ".", "", 1)
}

func sortedExtraKeys(extra map[string]string) []string {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if entities.IsKnownAttributeKey(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
