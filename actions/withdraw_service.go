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

var _ chain.Action = (*WithdrawService)(nil)

// WithdrawService delists a service: the backing asset leaves protocol
// custody for the current vendor's own account and the record is closed.
// Terminal for the listing; the asset can only return via a fresh listing.
type WithdrawService struct {
	Asset ids.ID `serialize:"true" json:"asset"`
}

// ComputeUnits implements chain.Action.
func (*WithdrawService) ComputeUnits(chain.Rules) uint64 {
	return WithdrawServiceComputeUnits
}

// Execute implements chain.Action.
func (w *WithdrawService) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	isSoulbound, _, currentVendor, _, _, exists, err := storage.GetServiceNoController(ctx, mu, w.Asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputServiceNotFound
	}
	if actor != currentVendor {
		return nil, ErrOutputUnauthorized
	}
	// The backing asset of a soulbound service is non-transferable and can
	// never leave custody.
	if isSoulbound {
		return nil, ErrOutputSoulboundNotWithdrawable
	}

	if err := storage.TransferAsset(ctx, mu, w.Asset, storage.CustodyAddress, actor); err != nil {
		return nil, err
	}
	if err := storage.RemoveService(ctx, mu, w.Asset); err != nil {
		return nil, err
	}

	return &WithdrawServiceResult{}, nil
}

// GetTypeID implements chain.Action.
func (*WithdrawService) GetTypeID() uint8 {
	return mconsts.WithdrawServiceID
}

// StateKeys implements chain.Action.
func (w *WithdrawService) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.ServiceStateKey(w.Asset)): state.All,
		string(storage.AssetStateKey(w.Asset)):   state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*WithdrawService) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ServiceChunks, storage.AssetChunks}
}

// ValidRange implements chain.Action.
func (*WithdrawService) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*WithdrawServiceResult)(nil)

type WithdrawServiceResult struct{}

// GetTypeID implements codec.Typed.
func (*WithdrawServiceResult) GetTypeID() uint8 {
	return mconsts.WithdrawServiceID
}
