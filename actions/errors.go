// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Config-related errors
	ErrOutputAlreadyInitialized = errors.New("marketplace is already initialized")
	ErrOutputNotInitialized     = errors.New("marketplace is not initialized")
	ErrOutputInvalidRoyaltyRate = errors.New("royalty rate exceeds 10000 basis points")

	// Authority errors
	ErrOutputUnauthorized           = errors.New("actor is not authorized to perform this action")
	ErrOutputVendorMismatch         = errors.New("current vendor does not match the vendor key")
	ErrOutputOriginalVendorMismatch = errors.New("original vendor does not match the vendor key")

	// Service-related errors
	ErrOutputServiceNotFound          = errors.New("service does not exist")
	ErrOutputServiceAlreadyExists     = errors.New("service already exists")
	ErrOutputTooManyAgreements        = errors.New("too many agreements")
	ErrOutputAgreementTitleEmpty      = errors.New("agreement title is empty")
	ErrOutputAgreementTitleTooLarge   = errors.New("agreement title is too large")
	ErrOutputAgreementDetailsTooLarge = errors.New("agreement details are too large")
	ErrOutputSoulboundNotTransferable = errors.New("soulbound service cannot change hands after its first sale")
	ErrOutputSoulboundNotWithdrawable = errors.New("soulbound service cannot be withdrawn")

	// Ask-related errors
	ErrOutputAskNotFound      = errors.New("ask does not exist")
	ErrOutputAskAlreadyExists = errors.New("ask already exists")
	ErrOutputSelfTrade        = errors.New("asker and current vendor are the same")

	// Asset-related errors
	ErrOutputAssetNotFound = errors.New("asset does not exist")
)
