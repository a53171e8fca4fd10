package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"print3d_quote/internal/domain/entities"
	mock_interfaces "print3d_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 890*int(time.Millisecond), time.UTC)

type chanPublisher struct {
	ch chan entities.QuoteNotification
}

func newChanPublisher() *chanPublisher {
	return &chanPublisher{ch: make(chan entities.QuoteNotification, 4)}
}

func (p *chanPublisher) Publish(_ context.Context, n entities.QuoteNotification) error {
	p.ch <- n
	return nil
}

func (p *chanPublisher) next(t *testing.T) entities.QuoteNotification {
	t.Helper()
	select {
	case n := <-p.ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatalf("no notification published")
	}
	return entities.QuoteNotification{}
}

type fakeUploader struct {
	result entities.UploadBatchResult
	err    error
	got    []entities.UploadFile
}

func (f *fakeUploader) UploadBatch(_ context.Context, files []entities.UploadFile) (entities.UploadBatchResult, error) {
	f.got = files
	return f.result, f.err
}

func attrs(kv ...string) entities.Attributes {
	out := entities.Attributes{}
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, entities.CustomAttribute{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func rawOrder(id, email string, items ...entities.Attributes) *entities.RawDraftOrder {
	type edge struct {
		Node entities.RawLineItem `json:"node"`
	}
	edges := []edge{}
	for i, a := range items {
		ab, _ := json.Marshal(a)
		edges = append(edges, edge{Node: entities.RawLineItem{
			ID:               fmt.Sprintf("gid://shopify/DraftOrderLineItem/%d", i+1),
			Title:            fmt.Sprintf("part-%d.stl", i),
			Quantity:         1,
			CustomAttributes: ab,
		}})
	}
	li, _ := json.Marshal(map[string]any{"edges": edges})
	return &entities.RawDraftOrder{ID: id, Name: "#D1", Email: email, LineItems: li}
}

func newQuoteTestUseCase(gw *mock_interfaces.MockIDraftOrderGateway, up IUploadUseCase, opts QuoteOptions) *QuoteUseCase {
	opts.Now = func() time.Time { return fixedNow }
	return NewQuoteUseCase(gw, up, NewAuthorizationService([]string{"staff@print.io"}), opts)
}

var (
	alice = entities.AuthContext{Email: "alice@x.com"}
	bob   = entities.AuthContext{Email: "bob@x.com"}
	admin = entities.AuthContext{Email: "staff@print.io", IsAdmin: true}
)

const gid1 = "gid://shopify/DraftOrder/1"

func TestQuoteUseCase_Get(t *testing.T) {
	t.Run("owner reads, others are forbidden, admin bypasses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(rawOrder(gid1, "Alice@X.com", attrs(entities.AttrQuoteNumber, "Q1")), nil).Times(3)

		q, err := uc.Get(context.Background(), "1", alice)
		if err != nil || q.QuoteNumber != "Q1" || q.CustomerEmail != "alice@x.com" {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
		if _, err := uc.Get(context.Background(), gid1, bob); !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected Forbidden, got %v", err)
		}
		if _, err := uc.Get(context.Background(), gid1, admin); err != nil {
			t.Fatalf("admin must bypass ownership: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(nil, nil)

		if _, err := uc.Get(context.Background(), gid1, admin); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("anonymous non-admin is forbidden without remote call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), nil, QuoteOptions{})

		if _, err := uc.Get(context.Background(), gid1, entities.AuthContext{}); !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected Forbidden, got %v", err)
		}
	})

	t.Run("cache hit skips the remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{Cache: cache})

		cache.EXPECT().Get(gomock.Any(), gid1).Return(rawOrder(gid1, "alice@x.com", attrs(entities.AttrStatus, entities.StatusValueQuoted)), nil)

		q, err := uc.Get(context.Background(), gid1, alice)
		if err != nil || q.Status != entities.QuoteStatusQuoted {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
	})

	t.Run("cache miss fills the cache, cache errors are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{Cache: cache})

		cache.EXPECT().Get(gomock.Any(), gid1).Return(nil, errors.New("dynamodb down"))
		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(rawOrder(gid1, "alice@x.com", attrs()), nil)
		cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb down"))

		if _, err := uc.Get(context.Background(), gid1, alice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_List(t *testing.T) {
	t.Run("counts come before the status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		broken := entities.RawDraftOrder{ID: "gid://shopify/DraftOrder/9", LineItems: json.RawMessage(`"oops"`)}
		gw.EXPECT().ListDraftOrders(gomock.Any(), "tag:"+entities.QuoteTag, 50).Return([]entities.RawDraftOrder{
			*rawOrder("gid://shopify/DraftOrder/1", "a@x.com", attrs(entities.AttrStatus, entities.StatusValuePending)),
			*rawOrder("gid://shopify/DraftOrder/2", "b@x.com", attrs(entities.AttrStatus, entities.StatusValueQuoted)),
			*rawOrder("gid://shopify/DraftOrder/3", "c@x.com", attrs(entities.AttrStatus, entities.StatusValueQuoted)),
			broken,
		}, nil)

		list, err := uc.List(context.Background(), admin, entities.QuoteStatusQuoted, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Total != 3 || list.PendingCount != 1 || list.QuotedCount != 2 || len(list.Items) != 2 {
			t.Fatalf("unexpected list: total=%d pending=%d quoted=%d items=%d", list.Total, list.PendingCount, list.QuotedCount, len(list.Items))
		}
	})

	t.Run("non-admin is filtered server side and re-checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().ListDraftOrders(gomock.Any(), gomock.Any(), maxListLimit).DoAndReturn(
			func(_ context.Context, query string, _ int) ([]entities.RawDraftOrder, error) {
				if !strings.Contains(query, `email:"alice@x.com"`) || !strings.Contains(query, "tag:"+entities.QuoteTag) {
					t.Errorf("unexpected query: %s", query)
				}
				return []entities.RawDraftOrder{
					*rawOrder("gid://shopify/DraftOrder/1", "alice@x.com", attrs()),
					*rawOrder("gid://shopify/DraftOrder/2", "bob@x.com", attrs()),
				}, nil
			},
		)

		list, err := uc.List(context.Background(), alice, "", 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Total != 1 || len(list.Items) != 1 || list.Items[0].CustomerEmail != "alice@x.com" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("non-admin email is normalized before matching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().ListDraftOrders(gomock.Any(), "tag:"+entities.QuoteTag+` AND email:"alice@x.com"`, 50).Return([]entities.RawDraftOrder{
			*rawOrder("gid://shopify/DraftOrder/1", "alice@x.com", attrs()),
		}, nil)

		list, err := uc.List(context.Background(), entities.AuthContext{Email: " Alice@X.com "}, "", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Total != 1 || len(list.Items) != 1 {
			t.Fatalf("own quotes must be kept: %+v", list)
		}
	})

	t.Run("non-admin without email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), nil, QuoteOptions{})

		if _, err := uc.List(context.Background(), entities.AuthContext{}, "", 10); !errors.Is(err, entities.ErrMissingEmail) {
			t.Fatalf("expected MissingEmail, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateQuoteAmount(t *testing.T) {
	t.Run("rewrites only transition keys on line item 0", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		pub := newChanPublisher()
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{Publisher: pub})

		current := rawOrder(gid1, "alice@x.com",
			attrs("A", "1", entities.AttrStatus, "old", "B", "2", entities.AttrQuoteNumber, "Q1"),
			attrs("C", "3"),
		)
		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(current, nil)

		var sent entities.DraftOrderInput
		gw.EXPECT().UpdateDraftOrder(gomock.Any(), gid1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in entities.DraftOrderInput) (*entities.RawDraftOrder, error) {
				sent = in
				return rawOrder(gid1, "alice@x.com", in.LineItems[0].CustomAttributes, in.LineItems[1].CustomAttributes), nil
			},
		)

		q, err := uc.UpdateQuoteAmount(context.Background(), "1", entities.QuoteAmountUpdate{Amount: "120.5", Note: " rush ", SenderEmail: "Staff@Print.io"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusQuoted {
			t.Fatalf("expected quoted, got %s", q.Status)
		}

		want := attrs(
			"A", "1", "B", "2", entities.AttrQuoteNumber, "Q1",
			entities.AttrStatus, entities.StatusValueQuoted,
			entities.AttrQuotedAmount, "120.50",
			entities.AttrQuotedAt, fixedNow.Format(time.RFC3339),
			entities.AttrQuoteNote, "rush",
			entities.AttrQuotedBy, "staff@print.io",
		)
		got := sent.LineItems[0].CustomAttributes
		if len(got) != len(want) {
			t.Fatalf("unexpected attributes: %+v", got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("attribute %d: want %+v got %+v", i, want[i], got[i])
			}
		}
		if sent.LineItems[0].OriginalUnitPrice != "120.50" {
			t.Fatalf("unexpected price: %s", sent.LineItems[0].OriginalUnitPrice)
		}
		if v := sent.LineItems[1].CustomAttributes; len(v) != 1 || v[0].Key != "C" || v[0].Value != "3" {
			t.Fatalf("other line items must be untouched: %+v", v)
		}
		if sent.Note != fmt.Sprintf(quotedNoteTemplate, "Q1", "120.50") || sent.Email != "alice@x.com" {
			t.Fatalf("unexpected input: %+v", sent)
		}

		n := pub.next(t)
		if n.Event != entities.NotificationQuoteQuoted || n.Amount != "120.50" || n.EventID == "" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})

	t.Run("zero line items is corrupt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(rawOrder(gid1, "alice@x.com"), nil)

		if _, err := uc.UpdateQuoteAmount(context.Background(), gid1, entities.QuoteAmountUpdate{Amount: "10"}); !errors.Is(err, entities.ErrCorruptQuote) {
			t.Fatalf("expected CorruptQuote, got %v", err)
		}
	})

	t.Run("completed quote is not requoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		completed := rawOrder(gid1, "alice@x.com", attrs(entities.AttrStatus, entities.StatusValueQuoted))
		completed.Status = entities.RemoteStatusCompleted
		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(completed, nil)

		if _, err := uc.UpdateQuoteAmount(context.Background(), gid1, entities.QuoteAmountUpdate{Amount: "10"}); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected InvalidInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(nil, nil)

		if _, err := uc.UpdateQuoteAmount(context.Background(), gid1, entities.QuoteAmountUpdate{Amount: "10"}); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("invalid amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), nil, QuoteOptions{})

		for _, amount := range []string{"", "abc", "-1"} {
			if _, err := uc.UpdateQuoteAmount(context.Background(), gid1, entities.QuoteAmountUpdate{Amount: amount}); !errors.Is(err, entities.ErrInvalidInput) {
				t.Fatalf("amount %q: expected InvalidInput, got %v", amount, err)
			}
		}
	})
}

func TestQuoteUseCase_Submit(t *testing.T) {
	input := func() entities.QuoteInput {
		return entities.QuoteInput{
			CustomerName:  "Alice",
			CustomerEmail: "Alice@X.com",
			Files: []entities.QuoteFileInput{
				{ClientID: "partA", FileName: "partA.stl", Quantity: 2, Parameters: entities.EngineeringParameters{Material: "PLA"}, Extra: map[string]string{"z": "last", "a": "first", entities.AttrStatus: "ignored"}},
				{ClientID: "partB", FileName: "partB.stl"},
			},
		}
	}
	files := func() []entities.UploadFile {
		return []entities.UploadFile{
			{ClientID: "partA", FileName: "partA.stl", Data: b64("solid")},
			{ClientID: "partB", FileName: "partB.stl", Data: b64("solid")},
		}
	}

	t.Run("creates a quote from the files that uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		pub := newChanPublisher()
		up := &fakeUploader{result: entities.UploadBatchResult{
			BatchID: "batch-1",
			PerFile: []entities.UploadFileResult{
				{Index: 0, ClientID: "partA", Success: true, Asset: &entities.Asset{AssetID: "gid://shopify/GenericFile/1", ServingURL: "https://cdn.example.com/partA.stl"}},
				{Index: 1, ClientID: "partB", ErrorKind: entities.KindTransferFailed},
			},
			SuccessCount: 1,
			FailureCount: 1,
		}}
		uc := newQuoteTestUseCase(gw, up, QuoteOptions{Publisher: pub})

		gw.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.DraftOrderInput) (*entities.RawDraftOrder, error) {
				if len(in.LineItems) != 1 {
					t.Fatalf("expected one line item, got %d", len(in.LineItems))
				}
				li := in.LineItems[0]
				a := li.CustomAttributes
				if li.Title != "partA.stl" || li.Quantity != 2 || li.OriginalUnitPrice != "0.00" {
					t.Errorf("unexpected line item: %+v", li)
				}
				if a.Value(entities.AttrQuoteNumber) != "Q20260304050607890" || a.Value(entities.AttrStatus) != entities.StatusValuePending {
					t.Errorf("unexpected attributes: %+v", a)
				}
				if a.Value(entities.AttrAssetURL) != "https://cdn.example.com/partA.stl" || a.Value(entities.AttrMaterial) != "PLA" || a.Value(entities.AttrCustomerName) != "Alice" {
					t.Errorf("unexpected attributes: %+v", a)
				}
				if a[len(a)-2].Key != "a" || a[len(a)-1].Key != "z" {
					t.Errorf("extras must follow in key order: %+v", a)
				}
				if in.Email != "alice@x.com" || len(in.Tags) != 1 || in.Tags[0] != entities.QuoteTag || !strings.Contains(in.Note, "partA.stl") {
					t.Errorf("unexpected input: %+v", in)
				}
				return &entities.RawDraftOrder{ID: gid1, Name: "#D1", InvoiceURL: "https://shop.example.com/invoices/1"}, nil
			},
		)

		res, err := uc.Submit(context.Background(), input(), files())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote == nil || res.Quote.RemoteID != gid1 || res.Quote.QuoteID != "Q20260304050607890" || res.Quote.InvoiceURL == "" {
			t.Fatalf("unexpected quote: %+v", res.Quote)
		}
		if res.Upload.FailureCount != 1 || len(up.got) != 2 {
			t.Fatalf("unexpected upload: %+v", res.Upload)
		}
		n := pub.next(t)
		if n.Event != entities.NotificationQuoteSubmitted || len(n.Files) != 1 || n.Files[0].FileName != "partA.stl" {
			t.Fatalf("unexpected notification: %+v", n)
		}
	})

	t.Run("no successful file means no quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		up := &fakeUploader{result: entities.UploadBatchResult{FailureCount: 2}}
		uc := newQuoteTestUseCase(gw, up, QuoteOptions{})

		res, err := uc.Submit(context.Background(), input(), files())
		if err != nil || res.Quote != nil {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("failed file never reaches the quote through the upload pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		staged := mock_interfaces.NewMockIStagedUploadGateway(ctrl)
		tr := mock_interfaces.NewMockIUploadTransferer(ctrl)
		uc := newQuoteTestUseCase(gw, NewUploadUseCase(staged, tr, UploadOptions{}), QuoteOptions{})

		staged.EXPECT().CreateStagedUploads(gomock.Any(), gomock.Len(2)).Return([]entities.StagedUploadOutcome{
			{Slot: signedSlot("1")},
			{Err: entities.NewError(entities.KindRemoteOperation, "file type not allowed")},
		}, nil)
		tr.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		staged.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.FileCreateRequest) (entities.Asset, error) {
				return entities.Asset{AssetID: "asset-" + req.FileName, ServingURL: "https://cdn.example.com/" + req.FileName}, nil
			},
		)
		gw.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.DraftOrderInput) (*entities.RawDraftOrder, error) {
				if len(in.LineItems) != 1 {
					t.Fatalf("expected only the partA line item, got %d", len(in.LineItems))
				}
				li := in.LineItems[0]
				if li.Title != "partA.step" || li.CustomAttributes.Value(entities.AttrAssetID) != "asset-partA.step" {
					t.Errorf("unexpected line item: %+v", li)
				}
				return &entities.RawDraftOrder{ID: gid1, Name: "#D1"}, nil
			},
		)

		in := entities.QuoteInput{
			CustomerEmail: "alice@x.com",
			Files: []entities.QuoteFileInput{
				{ClientID: "f", FileName: "partA.step"},
				{ClientID: "f", FileName: "partB.step"},
			},
		}
		res, err := uc.Submit(context.Background(), in, []entities.UploadFile{
			{ClientID: "f", FileName: "partA.step", Data: b64("solid")},
			{ClientID: "f", FileName: "partB.step", Data: b64("solid")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Upload.SuccessCount != 1 || res.Upload.FailureCount != 1 || res.Quote == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
		b := res.Upload.PerFile[1]
		if b.Success || b.ErrorKind != entities.KindSlotCreationFailed || b.ClientID == res.Upload.PerFile[0].ClientID {
			t.Fatalf("unexpected partB result: %+v", b)
		}
	})

	t.Run("invalid email stops before upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		up := &fakeUploader{}
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), up, QuoteOptions{})

		in := input()
		in.CustomerEmail = "nope"
		if _, err := uc.Submit(context.Background(), in, files()); !errors.Is(err, entities.ErrInvalidEmail) {
			t.Fatalf("expected InvalidEmail, got %v", err)
		}
		if up.got != nil {
			t.Fatalf("upload must not run")
		}
	})

	t.Run("upload configuration error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		up := &fakeUploader{err: entities.NewError(entities.KindConfiguration, "missing token")}
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), up, QuoteOptions{})

		if _, err := uc.Submit(context.Background(), input(), files()); !errors.Is(err, entities.ErrConfiguration) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
	})
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("nil create response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().CreateDraftOrder(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.Create(context.Background(), entities.QuoteInput{
			CustomerEmail: "alice@x.com",
			Files:         []entities.QuoteFileInput{{ClientID: "a", FileName: "a.stl"}},
		}, map[string]entities.Asset{"a": {AssetID: "f1"}})
		if !errors.Is(err, entities.ErrRemoteOperation) {
			t.Fatalf("expected RemoteOperationError, got %v", err)
		}
	})

	t.Run("no assets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), nil, QuoteOptions{})

		_, err := uc.Create(context.Background(), entities.QuoteInput{
			CustomerEmail: "alice@x.com",
			Files:         []entities.QuoteFileInput{{ClientID: "a", FileName: "a.stl"}},
		}, nil)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected InvalidInput, got %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("admin deletes without fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		cache := mock_interfaces.NewMockIQuoteCache(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{Cache: cache})

		gw.EXPECT().DeleteDraftOrder(gomock.Any(), gid1).Return(gid1, nil)
		cache.EXPECT().Delete(gomock.Any(), gid1).Return(nil)

		id, err := uc.Delete(context.Background(), "1", admin)
		if err != nil || id != gid1 {
			t.Fatalf("unexpected result: %s %v", id, err)
		}
	})

	t.Run("owner deletes after ownership check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gomock.InOrder(
			gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(rawOrder(gid1, "alice@x.com", attrs()), nil),
			gw.EXPECT().DeleteDraftOrder(gomock.Any(), gid1).Return(gid1, nil),
		)

		if _, err := uc.Delete(context.Background(), gid1, alice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(rawOrder(gid1, "alice@x.com", attrs()), nil)

		if _, err := uc.Delete(context.Background(), gid1, bob); !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected Forbidden, got %v", err)
		}
	})
}

func TestQuoteUseCase_SendNotice(t *testing.T) {
	t.Run("non-admin forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newQuoteTestUseCase(mock_interfaces.NewMockIDraftOrderGateway(ctrl), nil, QuoteOptions{})

		if _, err := uc.SendNotice(context.Background(), gid1, alice); !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected Forbidden, got %v", err)
		}
	})

	t.Run("admin sends to the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIDraftOrderGateway(ctrl)
		uc := newQuoteTestUseCase(gw, nil, QuoteOptions{})

		current := rawOrder(gid1, "alice@x.com", attrs(entities.AttrQuoteNumber, "Q1", entities.AttrStatus, entities.StatusValueQuoted))
		gw.EXPECT().GetDraftOrder(gomock.Any(), gid1).Return(current, nil)
		gw.EXPECT().SendDraftOrderInvoice(gomock.Any(), gid1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, n entities.InvoiceNotice) (*entities.RawDraftOrder, error) {
				if n.To != "alice@x.com" || !strings.Contains(n.Subject, "Q1") {
					t.Errorf("unexpected notice: %+v", n)
				}
				return current, nil
			},
		)

		q, err := uc.SendNotice(context.Background(), gid1, admin)
		if err != nil || q.QuoteNumber != "Q1" {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
	})
}

func TestNewQuoteNumber(t *testing.T) {
	if got := newQuoteNumber(fixedNow); got != "Q20260304050607890" {
		t.Fatalf("unexpected quote number: %s", got)
	}
}
