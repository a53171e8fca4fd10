package entities

import (
	"errors"
	"testing"
)

func TestDetectTransport(t *testing.T) {
	t.Run("policy parameters select multipart", func(t *testing.T) {
		slot := UploadSlot{
			TransferURL: "https://storage.example/upload",
			Parameters: []StagedUploadParameter{
				{Name: "key", Value: "tmp/1/a.step"},
				{Name: "policy", Value: "abc"},
				{Name: "x-goog-signature", Value: "sig"},
			},
		}
		tr, ok := DetectTransport(slot, "model/step").(PolicyTransport)
		if !ok {
			t.Fatalf("expected PolicyTransport")
		}
		if tr.URL() != slot.TransferURL || len(tr.Fields) != 3 || tr.Fields[0].Name != "key" || tr.Fields[2].Name != "x-goog-signature" {
			t.Fatalf("expected fields in given order, got %+v", tr.Fields)
		}
	})

	t.Run("content_type selects signed url", func(t *testing.T) {
		slot := UploadSlot{
			TransferURL: "https://storage.example/signed?sig=1",
			Parameters:  []StagedUploadParameter{{Name: "content_type", Value: "model/stl"}, {Name: "acl", Value: "private"}},
		}
		tr, ok := DetectTransport(slot, "application/octet-stream").(SignedURLTransport)
		if !ok {
			t.Fatalf("expected SignedURLTransport")
		}
		if tr.ContentType != "model/stl" {
			t.Fatalf("expected content type from parameter, got %s", tr.ContentType)
		}
	})

	t.Run("falls back to declared type", func(t *testing.T) {
		tr, ok := DetectTransport(UploadSlot{TransferURL: "u"}, "model/step").(SignedURLTransport)
		if !ok || tr.ContentType != "model/step" {
			t.Fatalf("unexpected transport: %+v", tr)
		}
	})

	t.Run("falls back to octet stream", func(t *testing.T) {
		tr := DetectTransport(UploadSlot{TransferURL: "u"}, "").(SignedURLTransport)
		if tr.ContentType != "application/octet-stream" {
			t.Fatalf("unexpected content type: %s", tr.ContentType)
		}
	})
}

func TestUploadBatchResult_AssetsByClientID(t *testing.T) {
	r := UploadBatchResult{
		PerFile: []UploadFileResult{
			{ClientID: "a", Success: true, Asset: &Asset{AssetID: "gid://shopify/GenericFile/1"}},
			{ClientID: "b", Success: false, ErrorKind: KindTransferFailed},
		},
		SuccessCount: 1,
		FailureCount: 1,
	}
	assets := r.AssetsByClientID()
	if len(assets) != 1 || assets["a"].AssetID != "gid://shopify/GenericFile/1" {
		t.Fatalf("unexpected assets: %+v", assets)
	}
}

func TestError_KindMatching(t *testing.T) {
	err := WrapError(KindRemoteTransport, "draftOrder", errors.New("timeout"))
	if !errors.Is(err, ErrRemoteTransport) {
		t.Fatalf("expected kind match")
	}
	if errors.Is(err, ErrRemoteOperation) {
		t.Fatalf("unexpected kind match")
	}
	if KindOf(err) != KindRemoteTransport || !IsRetryable(err) {
		t.Fatalf("expected retryable transport error")
	}
	if IsRetryable(NewError(KindRemoteOperation, "rejected")) {
		t.Fatalf("operation errors must not be retryable")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Fatalf("expected empty kind for foreign errors")
	}
}
