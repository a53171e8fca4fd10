package entities

import (
	"log"
	"unicode/utf8"
)

// MaxAttributeValueLength is the per-value cap of a line item custom attribute,
// counted in characters.
const MaxAttributeValueLength = 20000

// Attribute keys encoded on line items. The remote object has no custom schema,
// so these keys are the only durable extension point. Readers look keys up by
// presence only; unknown keys are carried but never interpreted.
const (
	AttrQuoteNumber  = "询价单号"
	AttrFileID       = "文件ID"
	AttrFileName     = "文件名称"
	AttrAssetID      = "文件资产ID"
	AttrAssetURL     = "文件链接"
	AttrCustomerName = "客户姓名"
	AttrCustomerNote = "客户备注"
	AttrPhone        = "联系电话"
	AttrCompany      = "公司"
	AttrMaterial     = "材料"
	AttrFinish       = "表面处理"
	AttrPrecision    = "精度"
	AttrColor        = "颜色"
	AttrInfill       = "填充率"
	AttrTolerance    = "公差"

	AttrStatus       = "状态"
	AttrQuotedAmount = "报价金额"
	AttrQuotedAt     = "报价时间"
	AttrQuoteNote    = "报价备注"
	AttrQuotedBy     = "报价人"
)

// Values stored under AttrStatus.
const (
	StatusValuePending = "待报价"
	StatusValueQuoted  = "已报价"
)

// QuoteTransitionKeys are rewritten wholesale on every quote-amount update.
var QuoteTransitionKeys = []string{AttrStatus, AttrQuotedAmount, AttrQuotedAt, AttrQuoteNote, AttrQuotedBy}

var knownAttributeKeys = map[string]struct{}{
	AttrQuoteNumber: {}, AttrFileID: {}, AttrFileName: {}, AttrAssetID: {}, AttrAssetURL: {},
	AttrCustomerName: {}, AttrCustomerNote: {}, AttrPhone: {}, AttrCompany: {}, AttrMaterial: {}, AttrFinish: {}, AttrPrecision: {}, AttrColor: {},
	AttrInfill: {}, AttrTolerance: {}, AttrStatus: {}, AttrQuotedAmount: {}, AttrQuotedAt: {},
	AttrQuoteNote: {}, AttrQuotedBy: {},
}

type CustomAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attributes is an ordered list of custom attributes with unique keys.
type Attributes []CustomAttribute

func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

func (a Attributes) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Without returns a copy of a with the given keys removed, order preserved.
func (a Attributes) Without(keys ...string) Attributes {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Attributes, 0, len(a))
	for _, attr := range a {
		if _, ok := drop[attr.Key]; ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}

// AttributeBuilder assembles an Attributes list.
//
// Keys are unique: a later Set for an existing key replaces its value in
// place. Values longer than MaxAttributeValueLength are dropped (never
// truncated) and the key is recorded in Dropped.
type AttributeBuilder struct {
	attrs   Attributes
	index   map[string]int
	dropped []string
}

func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{index: map[string]int{}}
}

func (b *AttributeBuilder) Set(key, value string) *AttributeBuilder {
	if key == "" {
		return b
	}
	if n := utf8.RuneCountInString(value); n > MaxAttributeValueLength {
		log.Printf("[quote][attributes] dropping oversized attribute key=%q length=%d max=%d", key, n, MaxAttributeValueLength)
		b.dropped = append(b.dropped, key)
		return b
	}
	if i, ok := b.index[key]; ok {
		b.attrs[i].Value = value
		return b
	}
	b.index[key] = len(b.attrs)
	b.attrs = append(b.attrs, CustomAttribute{Key: key, Value: value})
	return b
}

// SetIfPresent skips empty values.
func (b *AttributeBuilder) SetIfPresent(key, value string) *AttributeBuilder {
	if value == "" {
		return b
	}
	return b.Set(key, value)
}

func (b *AttributeBuilder) SetAll(attrs Attributes) *AttributeBuilder {
	for _, a := range attrs {
		b.Set(a.Key, a.Value)
	}
	return b
}

func (b *AttributeBuilder) Attributes() Attributes {
	out := make(Attributes, len(b.attrs))
	copy(out, b.attrs)
	return out
}

func (b *AttributeBuilder) Dropped() []string {
	return append([]string(nil), b.dropped...)
}

// EngineeringParameters are the per-file print settings a customer picks.
type EngineeringParameters struct {
	Material  string `json:"material,omitempty"`
	Finish    string `json:"finish,omitempty"`
	Precision string `json:"precision,omitempty"`
	Color     string `json:"color,omitempty"`
	Infill    string `json:"infill,omitempty"`
	Tolerance string `json:"tolerance,omitempty"`
}

// LineItemFields is the typed projection of a line item's known attributes.
// Anything else lands in AdditionalAttributes and is never interpreted.
type LineItemFields struct {
	QuoteNumber  string                `json:"quoteNumber,omitempty"`
	CustomerName string                `json:"customerName,omitempty"`
	CustomerNote string                `json:"customerNote,omitempty"`
	Phone        string                `json:"phone,omitempty"`
	Company      string                `json:"company,omitempty"`
	FileID       string                `json:"fileId,omitempty"`
	FileName     string                `json:"fileName,omitempty"`
	AssetID      string                `json:"assetId,omitempty"`
	AssetURL     string                `json:"assetUrl,omitempty"`
	Parameters   EngineeringParameters `json:"parameters"`

	Status       string `json:"status,omitempty"`
	QuotedAmount string `json:"quotedAmount,omitempty"`
	QuotedAt     string `json:"quotedAt,omitempty"`
	QuoteNote    string `json:"quoteNote,omitempty"`
	QuotedBy     string `json:"quotedBy,omitempty"`

	AdditionalAttributes map[string]string `json:"additionalAttributes,omitempty"`
}

func decodeLineItemFields(a Attributes) LineItemFields {
	f := LineItemFields{
		QuoteNumber:  a.Value(AttrQuoteNumber),
		CustomerName: a.Value(AttrCustomerName),
		CustomerNote: a.Value(AttrCustomerNote),
		Phone:        a.Value(AttrPhone),
		Company:      a.Value(AttrCompany),
		FileID:       a.Value(AttrFileID),
		FileName:     a.Value(AttrFileName),
		AssetID:      a.Value(AttrAssetID),
		AssetURL:     a.Value(AttrAssetURL),
		Parameters: EngineeringParameters{
			Material:  a.Value(AttrMaterial),
			Finish:    a.Value(AttrFinish),
			Precision: a.Value(AttrPrecision),
			Color:     a.Value(AttrColor),
			Infill:    a.Value(AttrInfill),
			Tolerance: a.Value(AttrTolerance),
		},
		Status:       a.Value(AttrStatus),
		QuotedAmount: a.Value(AttrQuotedAmount),
		QuotedAt:     a.Value(AttrQuotedAt),
		QuoteNote:    a.Value(AttrQuoteNote),
		QuotedBy:     a.Value(AttrQuotedBy),
	}
	for _, attr := range a {
		if _, known := knownAttributeKeys[attr.Key]; known {
			continue
		}
		if f.AdditionalAttributes == nil {
			f.AdditionalAttributes = map[string]string{}
		}
		f.AdditionalAttributes[attr.Key] = attr.Value
	}
	return f
}

// SetParameters writes the non-empty engineering parameters.
func (b *AttributeBuilder) SetParameters(p EngineeringParameters) *AttributeBuilder {
	return b.
		SetIfPresent(AttrMaterial, p.Material).
		SetIfPresent(AttrFinish, p.Finish).
		SetIfPresent(AttrPrecision, p.Precision).
		SetIfPresent(AttrColor, p.Color).
		SetIfPresent(AttrInfill, p.Infill).
		SetIfPresent(AttrTolerance, p.Tolerance)
}

// IsKnownAttributeKey reports whether key is one of the interpreted keys.
func IsKnownAttributeKey(key string) bool {
	_, ok := knownAttributeKeys[key]
	return ok
}
