package request

import (
	"encoding/json"
	"fmt"
	"strings"

	"print3d_quote/internal/domain/entities"
)

// AuthFields are the identity hints a body may carry. Admin accepts a JSON
// bool, number or string.
type AuthFields struct {
	Email string `json:"email"`
	Admin any    `json:"admin"`
}

func (a AuthFields) AdminFlag() string {
	switch v := a.Admin.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%g", v), ".0")
	}
	return ""
}

type QuoteFileRequest struct {
	ClientID  string            `json:"client_id"`
	FileName  string            `json:"file_name" binding:"required"`
	MimeType  string            `json:"mime_type"`
	Data      string            `json:"data"`
	Quantity  int               `json:"quantity"`
	Material  string            `json:"material"`
	Finish    string            `json:"finish"`
	Precision string            `json:"precision"`
	Color     string            `json:"color"`
	Infill    string            `json:"infill"`
	Tolerance string            `json:"tolerance"`
	Extra     map[string]string `json:"extra"`
}

// SubmitQuoteRequest uploads the files and creates the quote in one call.
type SubmitQuoteRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	Phone         string             `json:"phone"`
	Company       string             `json:"company"`
	Note          string             `json:"note"`
	Files         []QuoteFileRequest `json:"files" binding:"required,min=1,dive"`
}

func (r SubmitQuoteRequest) ToDomain() (entities.QuoteInput, []entities.UploadFile) {
	input := entities.QuoteInput{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: r.CustomerEmail,
		Phone:         strings.TrimSpace(r.Phone),
		Company:       strings.TrimSpace(r.Company),
		Note:          strings.TrimSpace(r.Note),
		Files:         make([]entities.QuoteFileInput, 0, len(r.Files)),
	}
	uploads := make([]entities.UploadFile, 0, len(r.Files))
	for _, f := range r.Files {
		clientID := strings.TrimSpace(f.ClientID)
		input.Files = append(input.Files, entities.QuoteFileInput{
			ClientID: clientID,
			FileName: strings.TrimSpace(f.FileName),
			Quantity: f.Quantity,
			Parameters: entities.EngineeringParameters{
				Material:  f.Material,
				Finish:    f.Finish,
				Precision: f.Precision,
				Color:     f.Color,
				Infill:    f.Infill,
				Tolerance: f.Tolerance,
			},
			Extra: f.Extra,
		})
		uploads = append(uploads, entities.UploadFile{
			ClientID: clientID,
			FileName: f.FileName,
			MimeType: f.MimeType,
			Data:     f.Data,
		})
	}
	return input, uploads
}

type UploadFileRequest struct {
	ClientID string `json:"client_id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type UploadRequest struct {
	Files []UploadFileRequest `json:"files" binding:"required,min=1"`
}

func (r UploadRequest) ToDomain() []entities.UploadFile {
	out := make([]entities.UploadFile, 0, len(r.Files))
	for _, f := range r.Files {
		out = append(out, entities.UploadFile{ClientID: f.ClientID, FileName: f.FileName, MimeType: f.MimeType, Data: f.Data})
	}
	return out
}

// UpdateQuoteAmountRequest accepts the amount as a JSON number or numeric string.
type UpdateQuoteAmountRequest struct {
	AuthFields
	Amount json.Number `json:"amount" binding:"required"`
	Note   string      `json:"note"`
}
