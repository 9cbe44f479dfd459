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

var _ chain.Action = (*UpdateRoyalty)(nil)

// UpdateRoyalty overwrites the protocol royalty rate. Admin only.
type UpdateRoyalty struct {
	NewRoyaltyFeeBasisPoints uint16 `serialize:"true" json:"newRoyaltyFeeBasisPoints"`
}

// ComputeUnits implements chain.Action.
func (*UpdateRoyalty) ComputeUnits(chain.Rules) uint64 {
	return UpdateRoyaltyComputeUnits
}

// Execute implements chain.Action.
func (u *UpdateRoyalty) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if u.NewRoyaltyFeeBasisPoints > storage.MaxRoyaltyFeeBasisPoints {
		return nil, ErrOutputInvalidRoyaltyRate
	}

	admin, _, exists, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputNotInitialized
	}
	if actor != admin {
		return nil, ErrOutputUnauthorized
	}

	if err := storage.SetConfig(ctx, mu, admin, u.NewRoyaltyFeeBasisPoints); err != nil {
		return nil, err
	}

	return &UpdateRoyaltyResult{}, nil
}

// GetTypeID implements chain.Action.
func (*UpdateRoyalty) GetTypeID() uint8 {
	return mconsts.UpdateRoyaltyID
}

// StateKeys implements chain.Action.
func (*UpdateRoyalty) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*UpdateRoyalty) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks}
}

// ValidRange implements chain.Action.
func (*UpdateRoyalty) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*UpdateRoyaltyResult)(nil)

type UpdateRoyaltyResult struct{}

// GetTypeID implements codec.Typed.
func (*UpdateRoyaltyResult) GetTypeID() uint8 {
	return mconsts.UpdateRoyaltyID
}
