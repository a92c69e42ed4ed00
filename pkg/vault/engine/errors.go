package engine

import "errors"

var (
	// ErrAlreadyInitialized indicates the singleton admin record already exists
	ErrAlreadyInitialized = errors.New("vault program is already initialized")

	// ErrNotInitialized indicates a privileged operation was attempted before
	// an authority was bound
	ErrNotInitialized = errors.New("vault program is not initialized")

	// ErrUnauthorized indicates the caller is not the bound admin authority
	ErrUnauthorized = errors.New("caller is not the admin authority")

	// ErrNameTooLong indicates an asset name over the maximum length
	ErrNameTooLong = errors.New("asset name is too long")

	// ErrTickerTooLong indicates an asset ticker over the maximum length
	ErrTickerTooLong = errors.New("asset ticker is too long")

	// ErrInvalidPrice indicates a zero asset price, which would make every
	// deposit fault on division
	ErrInvalidPrice = errors.New("asset price must be positive")

	// ErrAssetNotFound indicates no asset is registered for the mint
	ErrAssetNotFound = errors.New("no asset registered for mint")

	// ErrAssetAlreadyExists indicates an asset is already registered for the mint
	ErrAssetAlreadyExists = errors.New("asset already registered for mint")

	// ErrDepositLimitExceeded indicates a deposit would push the vault reserve
	// over its configured ceiling
	ErrDepositLimitExceeded = errors.New("deposit would exceed vault deposit limit")

	// ErrArithmeticOverflow is the fatal class for any overflow or underflow
	// in vault accounting. It always aborts the operation with no effect and
	// signals drifted accounting or an adversarial input.
	ErrArithmeticOverflow = errors.New("arithmetic overflow in vault accounting")
)
