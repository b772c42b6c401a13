package models

import "time"

// ParseResult contains a decoded source product with its decoding error if there is any.
type ParseResult struct {
	Product SourceProduct
	Error   error
}

// SourceVariant is a single color/size unit of a vendor feed product.
type SourceVariant struct {
	Color       string
	Size        string
	Barcode     string
	ProductCode string
	VariantID   string
	Quantity    string
	Price       string
}

// RawBarcode returns the variant barcode using the source preference order:
// barcode, then productCode, then variantId.
func (v SourceVariant) RawBarcode() string {
	switch {
	case v.Barcode != "":
		return v.Barcode
	case v.ProductCode != "":
		return v.ProductCode
	default:
		return v.VariantID
	}
}

// SourceProduct is a product record as decoded from the vendor feed.
type SourceProduct struct {
	Code         string
	Name         string
	Stock        string
	Price        string
	Currency     string
	TaxRate      string
	Barcode      string
	MainCategory string
	Category     string
	SubCategory  string
	Description  string
	Brand        string
	Weight       string
	Images       []string
	Variants     []SourceVariant
}

// NormalizedVariant is the canonical form of a source variant.
type NormalizedVariant struct {
	Code       string
	Quantity   string
	Price      string
	ColorLabel string
	ColorValue string
	SizeLabel  string
	SizeValue  string
	Barcode    string
}

// NormalizedProduct is the canonical output unit of the converter,
// one per source product with a non-empty code.
type NormalizedProduct struct {
	Code        string
	Name        string
	Quantity    string
	Price       string
	Currency    string
	TaxRate     string
	Barcode     string
	Category    string
	Description string
	Brand       string
	Model       string
	Volume      string
	Weight      string
	Images      []string
	Variants    []NormalizedVariant
}

// CatalogVariant is a canonical-schema variant as read back for syncing.
type CatalogVariant struct {
	Code     string
	Quantity int
	Price    string
	Name1    string
	Value1   string
	Name2    string
	Value2   string
	Barcode  string
}

// CatalogProduct is the simplified canonical-schema product view used by
// the sync controller and the remote catalog client.
type CatalogProduct struct {
	Code        string
	Title       string
	Price       float64
	Quantity    int
	Currency    string
	Description string
	Category    string
	Barcode     string
	Images      []string
	Tags        []string
	Variants    []CatalogVariant
}

// SyncState is the persisted record of what was last pushed to the remote
// catalog. It is owned exclusively by the sync controller.
type SyncState struct {
	LastSync  *time.Time        `json:"last_sync,omitempty"`
	RemoteIDs map[string]string `json:"remote_product_ids"`
	Hashes    map[string]string `json:"product_hashes"`
}

// NewSyncState returns an empty SyncState with initialized maps.
func NewSyncState() *SyncState {
	return &SyncState{
		RemoteIDs: map[string]string{},
		Hashes:    map[string]string{},
	}
}

// Normalize initializes nil maps so a leniently decoded state is usable.
func (s *SyncState) Normalize() {
	if s.RemoteIDs == nil {
		s.RemoteIDs = map[string]string{}
	}
	if s.Hashes == nil {
		s.Hashes = map[string]string{}
	}
}

// SyncRun is one sync cycle with its statistics.
type SyncRun struct {
	ID            int
	FeedURL       string
	CreatedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	Created       *int32
	Updated       *int32
	Unchanged     *int32
	Failed        *int32
}
