// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"

	mconsts "github.com/toanbt173404/two-sided-services-marketplace/consts"
)

var _ chain.Action = (*InitializeMarketplace)(nil)

// InitializeMarketplace creates the config singleton. The actor becomes the
// marketplace admin.
type InitializeMarketplace struct {
	RoyaltyFeeBasisPoints uint16 `serialize:"true" json:"royaltyFeeBasisPoints"`
}

// ComputeUnits implements chain.Action.
func (*InitializeMarketplace) ComputeUnits(chain.Rules) uint64 {
	return InitializeMarketplaceComputeUnits
}

// Execute implements chain.Action.
func (i *InitializeMarketplace) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if i.RoyaltyFeeBasisPoints > storage.MaxRoyaltyFeeBasisPoints {
		return nil, ErrOutputInvalidRoyaltyRate
	}

	_, _, exists, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOutputAlreadyInitialized
	}

	if err := storage.SetConfig(ctx, mu, actor, i.RoyaltyFeeBasisPoints); err != nil {
		return nil, err
	}

	return &InitializeMarketplaceResult{}, nil
}

// GetTypeID implements chain.Action.
func (*InitializeMarketplace) GetTypeID() uint8 {
	return mconsts.InitializeMarketplaceID
}

// StateKeys implements chain.Action.
func (*InitializeMarketplace) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*InitializeMarketplace) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks}
}

// ValidRange implements chain.Action.
func (*InitializeMarketplace) ValidRange(chain.Rules) (start int64, end int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}

var _ codec.Typed = (*InitializeMarketplaceResult)(nil)

type InitializeMarketplaceResult struct{}

// GetTypeID implements codec.Typed.
func (*InitializeMarketplaceResult) GetTypeID() uint8 {
	return mconsts.InitializeMarketplaceID
}
