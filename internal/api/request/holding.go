package request

type CreateHoldingRequest struct {
	AssetID      string   `json:"assetId"`
	Name         string   `json:"name"`
	SecurityID   *string  `json:"securityId,omitempty"`
	Quantity     float64  `json:"quantity"`
	Currency     string   `json:"currency,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
}

type UpdateHoldingRequest struct {
	Name         *string  `json:"name,omitempty"`
	SecurityID   *string  `json:"securityId,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	CurrentValue *float64 `json:"currentValue,omitempty"`
}
