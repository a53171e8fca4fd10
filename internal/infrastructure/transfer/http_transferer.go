package transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"print3d_quote/internal/domain/entities"
	"print3d_quote/internal/usecase/interfaces"
)

const (
	contentSHA256Header = "x-amz-content-sha256"
	bodySnippetLength   = 512
)

// HTTPTransferer sends file bytes to staged upload slots.
type HTTPTransferer struct {
	http *http.Client
}

var _ interfaces.IUploadTransferer = (*HTTPTransferer)(nil)

func NewHTTPTransferer(httpClient *http.Client) *HTTPTransferer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransferer{http: httpClient}
}

func (t *HTTPTransferer) Transfer(ctx context.Context, transport entities.UploadTransport, file entities.PreparedFile) error {
	var (
		req *http.Request
		err error
	)
	switch tp := transport.(type) {
	case entities.PolicyTransport:
		req, err = policyRequest(ctx, tp, file)
	case entities.SignedURLTransport:
		req, err = signedURLRequest(ctx, tp, file)
	default:
		return entities.NewError(entities.KindTransferFailed, fmt.Sprintf("unsupported transport %T", transport))
	}
	if err != nil {
		return entities.WrapError(entities.KindTransferFailed, "build transfer request", err)
	}
	req.Header.Set(contentSHA256Header, entities.UnsignedPayload)

	resp, err := t.http.Do(req)
	if err != nil {
		return entities.WrapError(entities.KindTransferFailed, "transfer request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLength))
		log.Printf("[upload][transfer] rejected file=%q status=%d", file.FileName, resp.StatusCode)
		return &entities.Error{
			Kind:       entities.KindTransferFailed,
			Message:    "upload target rejected the file",
			HTTPStatus: resp.StatusCode,
			Body:       string(body),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// policyRequest builds a multipart POST: every slot field in the given order,
// then the file part with its own Content-Type.
func policyRequest(ctx context.Context, tp entities.PolicyTransport, file entities.PreparedFile) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range tp.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.FileName)))
	h.Set("Content-Type", file.MimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(file.Bytes); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tp.TransferURL, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}

func signedURLRequest(ctx context.Context, tp entities.SignedURLTransport, file entities.PreparedFile) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, tp.TransferURL, bytes.NewReader(file.Bytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", tp.ContentType)
	return req, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
