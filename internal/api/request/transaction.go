package request

type CreateTransactionRequest struct {
	Date              string  `json:"date"`
	Description       string  `json:"description"`
	Category          *string `json:"category,omitempty"`
	Amount            float64 `json:"amount"`
	AssetID           *string `json:"assetId,omitempty"`
	AffectsAssetValue *bool   `json:"affectsAssetValue,omitempty"`
}
