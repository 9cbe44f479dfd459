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

var _ chain.Action = (*UpdateAskPrice)(nil)

// UpdateAskPrice reprices a standing offer. Asker only. The escrow is
// adjusted by the price delta: raised prices top it up from the asker,
// lowered prices refund the difference.
type UpdateAskPrice struct {
	Asset ids.ID `serialize:"true" json:"asset"`

	NewAskPrice uint64 `serialize:"true" json:"newAskPrice"`
}

// ComputeUnits implements chain.Action.
func (*UpdateAskPrice) ComputeUnits(chain.Rules) uint64 {
	return UpdateAskPriceComputeUnits
}

// Execute implements chain.Action.
func (u *UpdateAskPrice) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	asker, askPrice, exists, err := storage.GetAskNoController(ctx, mu, u.Asset)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputAskNotFound
	}
	if actor != asker {
		return nil, ErrOutputUnauthorized
	}

	escrow := storage.AskEscrowAddress(u.Asset)
	switch {
	case u.NewAskPrice > askPrice:
		diff := u.NewAskPrice - askPrice
		if err := storage.SubBalance(ctx, mu, actor, diff); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, escrow, diff, true); err != nil {
			return nil, err
		}
	case u.NewAskPrice < askPrice:
		diff := askPrice - u.NewAskPrice
		if err := storage.SubBalance(ctx, mu, escrow, diff); err != nil {
			return nil, err
		}
		if err := storage.AddBalance(ctx, mu, actor, diff, true); err != nil {
			return nil, err
		}
	}

	if err := storage.SetAsk(ctx, mu, u.Asset, asker, u.NewAskPrice); err != nil {
		return nil, err
	}

	return &UpdateAskPriceResult{}, nil
}

// GetTypeID implements chain.Action.
func (*UpdateAskPrice) GetTypeID() uint8 {
	return mconsts.UpdateAskPriceID
}

// StateKeys implements chain.Action.
func (u *UpdateAskPrice) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.AskStateKey(u.Asset)):                          state.Read | state.Write,
		string(storage.BalanceKey(actor)):                             state.All,
		string(storage.BalanceKey(storage.AskEscrowAddress(u.Asset))): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*UpdateAskPrice) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.AskChunks, storage.BalanceChunks, storage.BalanceChunks}
}

// ValidRange implements chain.Action.
func (*UpdateAskPrice) ValidRange(chain.Rules) (start int64, end int64) {
	return -1, -1
}

var _ codec.Typed = (*UpdateAskPriceResult)(nil)

type UpdateAskPriceResult struct{}

// GetTypeID implements codec.Typed.
func (*UpdateAskPriceResult) GetTypeID() uint8 {
	return mconsts.UpdateAskPriceID
}
