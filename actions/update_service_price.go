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

var _ chain.Action = (*UpdateServicePrice)(nil)

// UpdateServicePrice overwrites a listing's price. Current vendor only.
type UpdateServicePrice struct {
	Asset ids.ID `serialize:"true" json:"asset"`

	NewPrice uint64 `serialize:"true" json:"newPrice"`
}

// ComputeUnits implements chain.Action.
func (*UpdateServicePrice) ComputeUnits(chain.Rules) uint64 {
	return UpdateServicePriceComputeUnits
}

// Execute implements chain.Action.
func (u *UpdateServicePrice) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	isSoulbound, originalVendor, currentVendor, _, agreements, exists, err := storage.GetServiceNoController(ctx, mu, u.Asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputServiceNotFound
	}
	if actor != currentVendor {
		return nil, ErrOutputUnauthorized
	}

	if err := storage.SetService(ctx, mu, u.Asset, isSoulbound, originalVendor, currentVendor, u.NewPrice, agreements); err != nil {
		return nil, err
	}

	return &UpdateServicePriceResult{}, nil
}

// GetTypeID implements chain.Action.
func (*UpdateServicePrice) GetTypeID() uint8 {
	return mconsts.UpdateServicePriceID
}

// StateKeys implements chain.Action.
func (u *UpdateServicePrice) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ServiceStateKey(u.Asset)): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*UpdateServicePrice) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ServiceChunks}
}

// ValidRange implements chain.Action.
func (*UpdateServicePrice) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*UpdateServicePriceResult)(nil)

type UpdateServicePriceResult struct{}

// GetTypeID implements codec.Typed.
func (*UpdateServicePriceResult) GetTypeID() uint8 {
	return mconsts.UpdateServicePriceID
}
