package model

import "time"

// AssetCategory identifies the kind of asset being tracked.
type AssetCategory string

// Asset categories. Markets is the only category valued dynamically
// through its holdings; every other category carries a stored value.
const (
	CategoryRealEstate    AssetCategory = "Real Estate"
	CategoryVehicles      AssetCategory = "Vehicles"
	CategoryMarine        AssetCategory = "Marine"
	CategoryArt           AssetCategory = "Art"
	CategoryWatches       AssetCategory = "Watches"
	CategoryCrypto        AssetCategory = "Crypto"
	CategoryPrivateEquity AssetCategory = "Private Equity"
	CategoryCash          AssetCategory = "Cash"
	CategoryMarkets       AssetCategory = "Markets"
	CategoryOther         AssetCategory = "Other"
)

// AssetCategories lists every valid category, in display order.
var AssetCategories = []AssetCategory{
	CategoryRealEstate,
	CategoryVehicles,
	CategoryMarine,
	CategoryArt,
	CategoryWatches,
	CategoryCrypto,
	CategoryPrivateEquity,
	CategoryCash,
	CategoryMarkets,
	CategoryOther,
}

// AssetStatus tracks an asset's lifecycle state.
type AssetStatus string

// Asset statuses. InRecovery assets keep their history but are
// excluded from every live total, projection, and snapshot.
const (
	StatusActive     AssetStatus = "Active"
	StatusSold       AssetStatus = "Sold"
	StatusInRecovery AssetStatus = "In Recovery"
	StatusLiquidated AssetStatus = "Liquidated"
)

// AssetStatuses lists every valid status.
var AssetStatuses = []AssetStatus{StatusActive, StatusSold, StatusInRecovery, StatusLiquidated}

// Appreciation types for forward projection.
const (
	Appreciates = "appreciates"
	Depreciates = "depreciates"
)

// DefaultAnnualRatePercent applies when an asset has no explicit rate.
const DefaultAnnualRatePercent = 5.0

// Asset represents a single tracked asset from the database.
// CurrentValue is authoritative for every category except Markets,
// where the value is derived from the asset's market holdings.
type Asset struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Category             AssetCategory `json:"category"`
	Subcategory          *string       `json:"subcategory"`
	Status               AssetStatus   `json:"status"`
	Currency             string        `json:"currency"`
	CurrentValue         *float64      `json:"currentValue"`
	PurchasePrice        float64       `json:"purchasePrice"`
	PurchaseDate         *time.Time    `json:"purchaseDate"`
	ProfitLossValue      *float64      `json:"profitLossValue"`
	AppreciationType     string        `json:"appreciationType"`
	AnnualRatePercent    *float64      `json:"annualRatePercent"`
	ConsiderAppreciation bool          `json:"considerAppreciation"`
	Notes                *string       `json:"notes"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// AssetFilter controls asset queries.
type AssetFilter struct {
	IncludeRecovery bool
	Category        AssetCategory
}

// ValidCategory reports whether c is a known asset category.
func ValidCategory(c AssetCategory) bool {
	for _, v := range AssetCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known asset status.
func ValidStatus(s AssetStatus) bool {
	for _, v := range AssetStatuses {
		if v == s {
			return true
		}
	}
	return false
}
