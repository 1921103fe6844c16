package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/patrimonio/wealth-backend/internal/model"
)

var testCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// AssetBuilder provides a fluent interface for creating test assets.
//
// Example usage:
//
//	asset := testutil.NewAsset().
//	    WithCategory(model.CategoryRealEstate).
//	    WithCurrentValue(450000).
//	    Build(t, db)
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{asset: model.Asset{
		ID:                   MakeID(),
		Name:                 "Test Asset",
		Category:             model.CategoryOther,
		Status:               model.StatusActive,
		Currency:             "EUR",
		AppreciationType:     model.Appreciates,
		ConsiderAppreciation: true,
		CreatedAt:            testCreatedAt,
		UpdatedAt:            testCreatedAt,
	}}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.asset.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.asset.Name = name
	return b
}

// WithCategory sets the category.
func (b *AssetBuilder) WithCategory(c model.AssetCategory) *AssetBuilder {
	b.asset.Category = c
	return b
}

// WithStatus sets the status.
func (b *AssetBuilder) WithStatus(s model.AssetStatus) *AssetBuilder {
	b.asset.Status = s
	return b
}

// WithCurrentValue sets the stored scalar value.
func (b *AssetBuilder) WithCurrentValue(v float64) *AssetBuilder {
	b.asset.CurrentValue = &v
	return b
}

// WithPurchase sets the purchase price and date.
func (b *AssetBuilder) WithPurchase(price float64, date time.Time) *AssetBuilder {
	b.asset.PurchasePrice = price
	b.asset.PurchaseDate = &date
	return b
}

// WithProfitLoss sets a stored profit/loss figure.
func (b *AssetBuilder) WithProfitLoss(v float64) *AssetBuilder {
	b.asset.ProfitLossValue = &v
	return b
}

// WithAnnualRate sets the projection rate percentage.
func (b *AssetBuilder) WithAnnualRate(rate float64) *AssetBuilder {
	b.asset.AnnualRatePercent = &rate
	return b
}

// Depreciating marks the asset as losing value over time.
func (b *AssetBuilder) Depreciating() *AssetBuilder {
	b.asset.AppreciationType = model.Depreciates
	return b
}

// WithoutAppreciation freezes the asset's projected value.
func (b *AssetBuilder) WithoutAppreciation() *AssetBuilder {
	b.asset.ConsiderAppreciation = false
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	var purchaseDate any
	if b.asset.PurchaseDate != nil {
		purchaseDate = b.asset.PurchaseDate.UTC().Format("2006-01-02")
	}

	_, err := db.Exec(`
		INSERT INTO asset (id, name, category, subcategory, status, currency, current_value,
			purchase_price, purchase_date, profit_loss_value, appreciation_type,
			annual_rate_percent, consider_appreciation, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.asset.ID, b.asset.Name, string(b.asset.Category), ptrArg(b.asset.Subcategory),
		string(b.asset.Status), b.asset.Currency, floatPtrArg(b.asset.CurrentValue),
		b.asset.PurchasePrice, purchaseDate, floatPtrArg(b.asset.ProfitLossValue),
		b.asset.AppreciationType, floatPtrArg(b.asset.AnnualRatePercent),
		b.asset.ConsiderAppreciation, ptrArg(b.asset.Notes),
		b.asset.CreatedAt.Format(time.RFC3339), b.asset.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return b.asset
}

// SecurityBuilder provides a fluent interface for creating test securities.
type SecurityBuilder struct {
	security model.Security
}

// NewSecurity creates a SecurityBuilder with sensible defaults.
func NewSecurity() *SecurityBuilder {
	return &SecurityBuilder{security: model.Security{
		ID:           MakeID(),
		Name:         "Test Security",
		Ticker:       MakeTicker("TST"),
		Currency:     "EUR",
		SecurityType: "stock",
	}}
}

// WithTicker sets the ticker.
func (b *SecurityBuilder) WithTicker(ticker string) *SecurityBuilder {
	b.security.Ticker = ticker
	return b
}

// WithPrice sets the current price.
func (b *SecurityBuilder) WithPrice(price float64) *SecurityBuilder {
	b.security.CurrentPrice = &price
	updated := testCreatedAt
	b.security.PriceUpdatedAt = &updated
	return b
}

// WithCurrency sets the trading currency.
func (b *SecurityBuilder) WithCurrency(currency string) *SecurityBuilder {
	b.security.Currency = currency
	return b
}

// AsCurrencyPair marks the security as an FX pair with the given
// ticker, e.g. "EURUSD".
func (b *SecurityBuilder) AsCurrencyPair(ticker string) *SecurityBuilder {
	b.security.SecurityType = model.SecurityTypeCurrency
	b.security.Ticker = ticker
	return b
}

// Build creates the security in the database and returns it.
func (b *SecurityBuilder) Build(t *testing.T, db *sql.DB) model.Security {
	t.Helper()

	var priceUpdatedAt any
	if b.security.PriceUpdatedAt != nil {
		priceUpdatedAt = b.security.PriceUpdatedAt.UTC().Format(time.RFC3339)
	}

	_, err := db.Exec(`
		INSERT INTO security (id, name, ticker, currency, security_type, current_price, price_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.security.ID, b.security.Name, b.security.Ticker, b.security.Currency,
		b.security.SecurityType, floatPtrArg(b.security.CurrentPrice), priceUpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test security: %v", err)
	}

	return b.security
}

// HoldingBuilder provides a fluent interface for creating test holdings.
type HoldingBuilder struct {
	holding model.MarketHolding
}

// NewHolding creates a HoldingBuilder owned by the given asset.
func NewHolding(assetID string) *HoldingBuilder {
	return &HoldingBuilder{holding: model.MarketHolding{
		ID:        MakeID(),
		AssetID:   assetID,
		Name:      "Test Holding",
		Currency:  "EUR",
		CreatedAt: testCreatedAt,
		UpdatedAt: testCreatedAt,
	}}
}

// WithSecurity links the holding to a security.
func (b *HoldingBuilder) WithSecurity(securityID string) *HoldingBuilder {
	b.holding.SecurityID = &securityID
	return b
}

// WithQuantity sets the held quantity.
func (b *HoldingBuilder) WithQuantity(q float64) *HoldingBuilder {
	b.holding.Quantity = q
	return b
}

// WithStaticValue sets a stored value for unpriced holdings.
func (b *HoldingBuilder) WithStaticValue(v float64) *HoldingBuilder {
	b.holding.CurrentValue = &v
	return b
}

// WithCurrency sets the holding's currency.
func (b *HoldingBuilder) WithCurrency(currency string) *HoldingBuilder {
	b.holding.Currency = currency
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.MarketHolding {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO market_holding (id, asset_id, name, security_id, quantity, currency, current_value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.holding.ID, b.holding.AssetID, b.holding.Name, ptrArg(b.holding.SecurityID),
		b.holding.Quantity, b.holding.Currency, floatPtrArg(b.holding.CurrentValue),
		b.holding.CreatedAt.Format(time.RFC3339), b.holding.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return b.holding
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	tx model.Transaction
}

// NewTransaction creates a TransactionBuilder with the given date and
// amount.
func NewTransaction(date time.Time, amount float64) *TransactionBuilder {
	return &TransactionBuilder{tx: model.Transaction{
		ID:                MakeID(),
		Date:              date,
		Description:       "Test transaction",
		Amount:            amount,
		AffectsAssetValue: true,
		CreatedAt:         testCreatedAt,
	}}
}

// WithDescription sets the description.
func (b *TransactionBuilder) WithDescription(d string) *TransactionBuilder {
	b.tx.Description = d
	return b
}

// WithCategory sets the category.
func (b *TransactionBuilder) WithCategory(c string) *TransactionBuilder {
	b.tx.Category = &c
	return b
}

// ForAsset links the transaction to an asset.
func (b *TransactionBuilder) ForAsset(assetID string) *TransactionBuilder {
	b.tx.AssetID = &assetID
	return b
}

// CashOnly marks the transaction as not affecting the linked asset's
// value.
func (b *TransactionBuilder) CashOnly() *TransactionBuilder {
	b.tx.AffectsAssetValue = false
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO wealth_transaction (id, date, description, category, amount, asset_id, affects_asset_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.tx.ID, b.tx.Date.UTC().Format("2006-01-02"), b.tx.Description, ptrArg(b.tx.Category),
		b.tx.Amount, ptrArg(b.tx.AssetID), b.tx.AffectsAssetValue,
		b.tx.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return b.tx
}

func ptrArg(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtrArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
