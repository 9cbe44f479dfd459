// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"

	mconsts "github.com/toanbt173404/two-sided-services-marketplace/consts"
)

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Marketplace records
	balancePrefix
	configPrefix
	servicePrefix
	askPrefix
	assetPrefix
)

// Chunks
const (
	BalanceChunks uint16 = 1
	ConfigChunks  uint16 = 1
	ServiceChunks uint16 = 16
	AskChunks     uint16 = 1
	AssetChunks   uint16 = 1
)

// Related to action invariants
const (
	MaxServiceAgreements    = 16
	MaxAgreementTitleSize   = 64
	MaxAgreementDetailsSize = 256

	// Royalty rates are expressed in basis points (1/100 of a percent).
	MaxRoyaltyFeeBasisPoints uint16 = 10_000
)

// CustodyAddress holds every listed service asset until it is withdrawn, so
// record ownership and asset ownership cannot drift apart.
var CustodyAddress codec.Address

func init() {
	CustodyAddress = codec.CreateAddress(mconsts.CUSTODYID, mconsts.ID)
}
