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

var _ chain.Action = (*AcceptAsk)(nil)

// AcceptAsk sells the service to the standing asker at the asked price.
// Current vendor only. The escrow pays out the remainder to the accepting
// vendor and, on a secondary sale, the royalty share to the original vendor;
// record ownership moves to the asker and the ask is closed.
type AcceptAsk struct {
	Asset ids.ID `serialize:"true" json:"asset"`

	OriginalVendor codec.Address `serialize:"true" json:"originalVendor"`
}

// ComputeUnits implements chain.Action.
func (*AcceptAsk) ComputeUnits(chain.Rules) uint64 {
	return AcceptAskComputeUnits
}

// Execute implements chain.Action.
func (a *AcceptAsk) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	_, royaltyFeeBasisPoints, initialized, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrOutputNotInitialized
	}

	isSoulbound, originalVendor, currentVendor, price, agreements, exists, err := storage.GetServiceNoController(ctx, mu, a.Asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputServiceNotFound
	}
	if actor != currentVendor {
		return nil, ErrOutputUnauthorized
	}
	if originalVendor != a.OriginalVendor {
		return nil, ErrOutputOriginalVendorMismatch
	}

	asker, askPrice, askExists, err := storage.GetAskNoController(ctx, mu, a.Asset)
	if err != nil {
		return nil, err
	}
	if !askExists {
		return nil, ErrOutputAskNotFound
	}
	if asker == currentVendor {
		return nil, ErrOutputSelfTrade
	}
	if isSoulbound && currentVendor != originalVendor {
		return nil, ErrOutputSoulboundNotTransferable
	}

	// Pay out of escrow.
	escrow := storage.AskEscrowAddress(a.Asset)
	var royalty uint64
	if currentVendor != originalVendor {
		share, remainder, err := royaltySplit(askPrice, royaltyFeeBasisPoints)
		if err != nil {
			return nil, err
		}
		if err := storage.SubBalance(ctx, mu, escrow, share); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, originalVendor, share, true); err != nil {
			return nil, err
		}
		if err := storage.SubBalance(ctx, mu, escrow, remainder); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, actor, remainder, true); err != nil {
			return nil, err
		}
		royalty = share
	} else {
		if err := storage.SubBalance(ctx, mu, escrow, askPrice); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, actor, askPrice, true); err != nil {
			return nil, err
		}
	}

	if err := storage.SetService(ctx, mu, a.Asset, isSoulbound, originalVendor, asker, price, agreements); err != nil {
		return nil, err
	}

	// Close the ask; a new one may be opened afterward.
	if err := storage.RemoveAsk(ctx, mu, a.Asset); err != nil {
		return nil, err
	}

	return &AcceptAskResult{AskPrice: askPrice, Royalty: royalty}, nil
}

// GetTypeID implements chain.Action.
func (*AcceptAsk) GetTypeID() uint8 {
	return mconsts.AcceptAskID
}

// StateKeys implements chain.Action.
func (a *AcceptAsk) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):                                   state.Read,
		string(storage.ServiceStateKey(a.Asset)):                      state.Read | state.Write,
		string(storage.AskStateKey(a.Asset)):                          state.All,
		string(storage.BalanceKey(actor)):                             state.All,
		string(storage.BalanceKey(a.OriginalVendor)):                  state.All,
		string(storage.BalanceKey(storage.AskEscrowAddress(a.Asset))): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*AcceptAsk) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.ConfigChunks,
		storage.ServiceChunks,
		storage.AskChunks,
		storage.BalanceChunks,
		storage.BalanceChunks,
		storage.BalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*AcceptAsk) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*AcceptAskResult)(nil)

// AcceptAskResult reports the escrowed amount paid out and the royalty share
// of it routed to the original vendor (zero on a primary sale).
type AcceptAskResult struct {
	AskPrice uint64 `serialize:"true" json:"askPrice"`

	Royalty uint64 `serialize:"true" json:"royalty"`
}

// GetTypeID implements codec.Typed.
func (*AcceptAskResult) GetTypeID() uint8 {
	return mconsts.AcceptAskID
}
