package entities

// UploadStep is the last step a file reached in the staged upload pipeline.
//
// Requested -> SlotIssued -> Transferred -> Registered
type UploadStep string

const (
	UploadStepRequested   UploadStep = "requested"
	UploadStepSlotIssued  UploadStep = "slot_issued"
	UploadStepTransferred UploadStep = "transferred"
	UploadStepRegistered  UploadStep = "registered"
)

// UnsignedPayload is the static content-hash sentinel sent with every
// transfer. It is not a checksum of the payload.
const UnsignedPayload = "UNSIGNED-PAYLOAD"

// UploadFile is one customer file as received, with base64 encoded bytes.
type UploadFile struct {
	ClientID string `json:"clientId"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// PreparedFile is an UploadFile after decoding.
type PreparedFile struct {
	ClientID string
	FileName string
	MimeType string
	Bytes    []byte
}

type StagedUploadRequest struct {
	FileName string
	MimeType string
	FileSize int64
}

type StagedUploadParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UploadSlot is an ephemeral single-use transfer target.
type UploadSlot struct {
	TransferURL      string                  `json:"url"`
	AssetResourceURL string                  `json:"resourceUrl"`
	Parameters       []StagedUploadParameter `json:"parameters"`
}

// StagedUploadOutcome is the slot result for the request at the same index.
// Exactly one of Slot and Err is set.
type StagedUploadOutcome struct {
	Slot *UploadSlot
	Err  error
}

// UploadTransport is the transfer variant of a slot, decided once per slot.
// It is implemented only by PolicyTransport and SignedURLTransport.
type UploadTransport interface {
	uploadTransport()
	URL() string
}

// PolicyTransport is a multipart form POST. Fields are sent in the given order
// and the file part always goes last.
type PolicyTransport struct {
	TransferURL string
	Fields      []StagedUploadParameter
}

// SignedURLTransport is a single-part PUT of the raw bytes.
type SignedURLTransport struct {
	TransferURL string
	ContentType string
}

func (PolicyTransport) uploadTransport()    {}
func (SignedURLTransport) uploadTransport() {}

func (t PolicyTransport) URL() string    { return t.TransferURL }
func (t SignedURLTransport) URL() string { return t.TransferURL }

// DetectTransport picks the variant from the slot parameters. A "policy"
// parameter selects the multipart variant; otherwise the slot is a signed URL,
// with Content-Type taken from "content_type" or the declared mime type.
func DetectTransport(slot UploadSlot, declaredMime string) UploadTransport {
	contentType := ""
	for _, p := range slot.Parameters {
		switch p.Name {
		case "policy":
			fields := make([]StagedUploadParameter, len(slot.Parameters))
			copy(fields, slot.Parameters)
			return PolicyTransport{TransferURL: slot.TransferURL, Fields: fields}
		case "content_type":
			contentType = p.Value
		}
	}
	if contentType == "" {
		contentType = declaredMime
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return SignedURLTransport{TransferURL: slot.TransferURL, ContentType: contentType}
}

type FileCreateRequest struct {
	ResourceURL string
	FileName    string
}

// Asset is the permanent, remote-owned file record.
type Asset struct {
	AssetID          string `json:"assetId"`
	ServingURL       string `json:"servingUrl"`
	ReportedByteSize int64  `json:"reportedByteSize"`
}

// UploadFileResult is the per-file outcome of a batch.
type UploadFileResult struct {
	Index        int        `json:"index"`
	ClientID     string     `json:"clientId"`
	FileName     string     `json:"fileName"`
	Success      bool       `json:"success"`
	Step         UploadStep `json:"step"`
	Asset        *Asset     `json:"asset,omitempty"`
	BytesSent    int64      `json:"bytesSent"`
	SizeMismatch bool       `json:"sizeMismatch"`
	ErrorKind    ErrorKind  `json:"errorKind,omitempty"`
	Error        string     `json:"error,omitempty"`
	HTTPStatus   int        `json:"httpStatus,omitempty"`
	ResponseBody string     `json:"-"`
}

// UploadBatchResult lets a caller reconcile which submitted files became
// usable assets. A batch never fails as a whole because of a single file.
type UploadBatchResult struct {
	BatchID      string             `json:"batchId"`
	PerFile      []UploadFileResult `json:"perFile"`
	SuccessCount int                `json:"successCount"`
	FailureCount int                `json:"failureCount"`
}

// AssetsByClientID indexes the successful results.
func (r UploadBatchResult) AssetsByClientID() map[string]Asset {
	out := make(map[string]Asset, r.SuccessCount)
	for _, f := range r.PerFile {
		if f.Success && f.Asset != nil {
			out[f.ClientID] = *f.Asset
		}
	}
	return out
}
