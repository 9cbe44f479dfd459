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

var _ chain.Action = (*AskService)(nil)

// AskService opens a standing offer on an existing asset. Any identity may
// ask, including one that does not hold the service. The offered amount is
// escrowed up front so acceptance can never fail on asker funds.
type AskService struct {
	Asset ids.ID `serialize:"true" json:"asset"`

	AskPrice uint64 `serialize:"true" json:"askPrice"`
}

// ComputeUnits implements chain.Action.
func (*AskService) ComputeUnits(chain.Rules) uint64 {
	return AskServiceComputeUnits
}

// Execute implements chain.Action.
func (a *AskService) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	_, _, initialized, err := storage.GetConfigNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, ErrOutputNotInitialized
	}

	_, assetExists, err := storage.GetAssetOwnerNoController(ctx, mu, a.Asset)
	if err != nil {
		return nil, err
	}
	if !assetExists {
		return nil, ErrOutputAssetNotFound
	}

	// Single ask per asset, enforced by the deterministic key.
	_, _, askExists, err := storage.GetAskNoController(ctx, mu, a.Asset)
	if err != nil {
		return nil, err
	}
	if askExists {
		return nil, ErrOutputAskAlreadyExists
	}

	// Escrow the offer.
	if err := storage.SubBalance(ctx, mu, actor, a.AskPrice); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, storage.AskEscrowAddress(a.Asset), a.AskPrice, true); err != nil {
		return nil, err
	}

	if err := storage.SetAsk(ctx, mu, a.Asset, actor, a.AskPrice); err != nil {
		return nil, err
	}

	return &AskServiceResult{}, nil
}

// GetTypeID implements chain.Action.
func (*AskService) GetTypeID() uint8 {
	return mconsts.AskServiceID
}

// StateKeys implements chain.Action.
func (a *AskService) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.ConfigKey()):                                   state.Read,
		string(storage.AssetStateKey(a.Asset)):                        state.Read,
		string(storage.AskStateKey(a.Asset)):                          state.All,
		string(storage.BalanceKey(actor)):                             state.Read | state.Write,
		string(storage.BalanceKey(storage.AskEscrowAddress(a.Asset))): state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*AskService) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.ConfigChunks,
		storage.AssetChunks,
		storage.AskChunks,
		storage.BalanceChunks,
		storage.BalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*AskService) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*AskServiceResult)(nil)

type AskServiceResult struct{}

// GetTypeID implements codec.Typed.
func (*AskServiceResult) GetTypeID() uint8 {
	return mconsts.AskServiceID
}
