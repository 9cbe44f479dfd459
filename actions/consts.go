// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	InitializeMarketplaceComputeUnits = 1
	UpdateRoyaltyComputeUnits         = 1
	CreateServiceComputeUnits         = 1
	BuyServiceComputeUnits            = 1
	UpdateServicePriceComputeUnits    = 1
	AskServiceComputeUnits            = 1
	UpdateAskPriceComputeUnits        = 1
	AcceptAskComputeUnits             = 1
	WithdrawServiceComputeUnits       = 1
)
