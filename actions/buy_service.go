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

var _ chain.Action = (*BuyService)(nil)

// BuyService purchases a listed service outright at its listed price. The
// vendor fields declare the counterparties and are validated against the
// record; they are required so the counterparty balance keys can be named in
// [StateKeys]. On a secondary sale (current vendor differs from the original
// vendor) a royalty share of the price is routed to the original vendor.
type BuyService struct {
	Asset ids.ID `serialize:"true" json:"asset"`

	CurrentVendor codec.Address `serialize:"true" json:"currentVendor"`

	OriginalVendor codec.Address `serialize:"true" json:"originalVendor"`
}

// ComputeUnits implements chain.Action.
func (*BuyService) ComputeUnits(chain.Rules) uint64 {
	return BuyServiceComputeUnits
}

// Execute implements chain.Action.
func (b *BuyService) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	_, royaltyFeeBasisPoints, initialized, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrOutputNotInitialized
	}

	isSoulbound, originalVendor, currentVendor, price, agreements, exists, err := storage.GetServiceNoController(ctx, mu, b.Asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputServiceNotFound
	}
	if currentVendor != b.CurrentVendor {
		return nil, ErrOutputVendorMismatch
	}
	if originalVendor != b.OriginalVendor {
		return nil, ErrOutputOriginalVendorMismatch
	}
	if actor == currentVendor {
		return nil, ErrOutputSelfTrade
	}
	// A soulbound service is locked to its first buyer.
	if isSoulbound && currentVendor != originalVendor {
		return nil, ErrOutputSoulboundNotTransferable
	}

	if err := storage.SubBalance(ctx, mu, actor, price); err != nil {
		return nil, err
	}
	var royalty uint64
	if currentVendor != originalVendor {
		share, remainder, err := royaltySplit(price, royaltyFeeBasisPoints)
		if err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, originalVendor, share, true); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, currentVendor, remainder, true); err != nil {
			return nil, err
		}
		royalty = share
	} else {
		if err := storage.AddBalance(ctx, mu, currentVendor, price, true); err != nil {
			return nil, err
		}
	}

	if err := storage.SetService(ctx, mu, b.Asset, isSoulbound, originalVendor, actor, price, agreements); err != nil {
		return nil, err
	}

	return &BuyServiceResult{Price: price, Royalty: royalty}, nil
}

// GetTypeID implements chain.Action.
func (*BuyService) GetTypeID() uint8 {
	return mconsts.BuyServiceID
}

// StateKeys implements chain.Action.
func (b *BuyService) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):                  state.Read,
		string(storage.ServiceStateKey(b.Asset)):     state.Read | state.Write,
		string(storage.BalanceKey(actor)):            state.Read | state.Write,
		string(storage.BalanceKey(b.CurrentVendor)):  state.All,
		string(storage.BalanceKey(b.OriginalVendor)): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*BuyService) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.ConfigChunks,
		storage.ServiceChunks,
		storage.BalanceChunks,
		storage.BalanceChunks,
		storage.BalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*BuyService) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*BuyServiceResult)(nil)

// BuyServiceResult reports the price actually paid and the royalty share of
// it routed to the original vendor (zero on a primary sale).
type BuyServiceResult struct {
	Price uint64 `serialize:"true" json:"price"`

	Royalty uint64 `serialize:"true" json:"royalty"`
}

// GetTypeID implements codec.Typed.
func (*BuyServiceResult) GetTypeID() uint8 {
	return mconsts.BuyServiceID
}
