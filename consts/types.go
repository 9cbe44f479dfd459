// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// TypeIDs for actions
const (
	InitializeMarketplaceID uint8 = iota
	UpdateRoyaltyID
	CreateServiceID
	BuyServiceID
	UpdateServicePriceID
	AskServiceID
	UpdateAskPriceID
	AcceptAskID
	WithdrawServiceID
)

// TypeIDs for auth
const (
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to marketplace address generation
	CUSTODYID
	ESCROWID
)
