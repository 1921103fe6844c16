package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrHoldingNotFound indicates that a market holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("market holding not found")

	// ErrSecurityNotFound indicates that a security with the given ID or ticker does not exist.
	ErrSecurityNotFound = errors.New("security not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPlanSnapshotNotFound indicates that a plan snapshot with the given ID does not exist.
	ErrPlanSnapshotNotFound = errors.New("plan snapshot not found")

	// ErrSettingNotFound indicates that no value is stored under the requested settings key.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidCategory indicates an unknown asset category.
	ErrInvalidCategory = errors.New("invalid asset category")

	// ErrHoldingOnNonMarketsAsset indicates an attempt to attach a market
	// holding to an asset outside the Markets category.
	ErrHoldingOnNonMarketsAsset = errors.New("holdings belong to Markets assets only")
)
