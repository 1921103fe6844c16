package request

type CreateAssetRequest struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Subcategory          *string  `json:"subcategory,omitempty"`
	Status               string   `json:"status,omitempty"`
	Currency             string   `json:"currency,omitempty"`
	CurrentValue         *float64 `json:"currentValue,omitempty"`
	PurchasePrice        float64  `json:"purchasePrice"`
	PurchaseDate         *string  `json:"purchaseDate,omitempty"`
	ProfitLossValue      *float64 `json:"profitLossValue,omitempty"`
	AppreciationType     string   `json:"appreciationType,omitempty"`
	AnnualRatePercent    *float64 `json:"annualRatePercent,omitempty"`
	ConsiderAppreciation *bool    `json:"considerAppreciation,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

type UpdateAssetRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Subcategory          *string  `json:"subcategory,omitempty"`
	Status               *string  `json:"status,omitempty"`
	Currency             *string  `json:"currency,omitempty"`
	CurrentValue         *float64 `json:"currentValue,omitempty"`
	PurchasePrice        *float64 `json:"purchasePrice,omitempty"`
	PurchaseDate         *string  `json:"purchaseDate,omitempty"`
	ProfitLossValue      *float64 `json:"profitLossValue,omitempty"`
	AppreciationType     *string  `json:"appreciationType,omitempty"`
	AnnualRatePercent    *float64 `json:"annualRatePercent,omitempty"`
	ConsiderAppreciation *bool    `json:"considerAppreciation,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}
