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

var _ chain.Action = (*CreateService)(nil)

// CreateService lists a new service. A fresh backing asset (the action id)
// is minted into protocol custody and the actor becomes both the original
// and current vendor. No payment changes hands at creation.
type CreateService struct {
	IsSoulbound bool `serialize:"true" json:"isSoulbound"`

	Agreements []storage.Agreement `serialize:"true" json:"agreements"`

	Price uint64 `serialize:"true" json:"price"`
}

// ComputeUnits implements chain.Action.
func (*CreateService) ComputeUnits(chain.Rules) uint64 {
	return CreateServiceComputeUnits
}

// Execute implements chain.Action.
func (c *CreateService) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, actionID ids.ID) (codec.Typed, error) {
	// Enforce agreement invariants
	if len(c.Agreements) > storage.MaxServiceAgreements {
		return nil, ErrOutputTooManyAgreements
	}
	for _, a := range c.Agreements {
		if len(a.Title) == 0 {
			return nil, ErrOutputAgreementTitleEmpty
		}
		if len(a.Title) > storage.MaxAgreementTitleSize {
			return nil, ErrOutputAgreementTitleTooLarge
		}
		if len(a.Details) > storage.MaxAgreementDetailsSize {
			return nil, ErrOutputAgreementDetailsTooLarge
		}
	}

	_, _, initialized, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrOutputNotInitialized
	}

	// [actionID] is unique per transaction, but guard against re-listing all
	// the same.
	_, _, _, _, _, exists, err := storage.GetServiceNoController(ctx, mu, actionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOutputServiceAlreadyExists
	}

	// Mint the backing asset into custody so record ownership and asset
	// ownership cannot be desynchronized by an out-of-band transfer.
	if err := storage.MintAsset(ctx, mu, actionID, storage.CustodyAddress); err != nil {
		return nil, err
	}

	if err := storage.SetService(ctx, mu, actionID, c.IsSoulbound, actor, actor, c.Price, c.Agreements); err != nil {
		return nil, err
	}

	return &CreateServiceResult{Asset: actionID}, nil
}

// GetTypeID implements chain.Action.
func (*CreateService) GetTypeID() uint8 {
	return mconsts.CreateServiceID
}

// StateKeys implements chain.Action.
func (*CreateService) StateKeys(_ codec.Address, actionID ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):               state.Read,
		string(storage.ServiceStateKey(actionID)): state.All,
		string(storage.AssetStateKey(actionID)):   state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*CreateService) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.ConfigChunks, storage.ServiceChunks, storage.AssetChunks}
}

// ValidRange implements chain.Action.
func (*CreateService) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*CreateServiceResult)(nil)

// CreateServiceResult reports the id of the freshly minted backing asset,
// which all later actions reference the listing by.
type CreateServiceResult struct {
	Asset ids.ID `serialize:"true" json:"asset"`
}

// GetTypeID implements codec.Typed.
func (*CreateServiceResult) GetTypeID() uint8 {
	return mconsts.CreateServiceID
}
