// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

func TestAskService(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	asker := codectest.NewRandomAddress()
	rival := codectest.NewRandomAddress()
	asset := ids.GenerateTestID()
	escrow := storage.AskEscrowAddress(asset)

	newAskView := func(seed func(context.Context, state.Mutable)) state.Mutable {
		m := ts.NewView(
			state.Keys{
				string(storage.ConfigKey()):          state.All,
				string(storage.AssetStateKey(asset)): state.All,
				string(storage.AskStateKey(asset)):   state.All,
				string(storage.BalanceKey(asker)):    state.All,
				string(storage.BalanceKey(escrow)):   state.All,
			},
			chaintest.NewInMemoryStore().Storage,
		)
		if seed != nil {
			seed(context.TODO(), m)
		}
		return m
	}

	seedConfig := func(ctx context.Context, m state.Mutable) {
		req.NoError(storage.SetConfig(ctx, m, codectest.NewRandomAddress(), RoyaltyFeeBasisPoints))
	}
	seedAsset := func(ctx context.Context, m state.Mutable) {
		seedConfig(ctx, m)
		req.NoError(storage.MintAsset(ctx, m, asset, storage.CustodyAddress))
	}

	tests := []chaintest.ActionTest{
		{
			Name: "No ask before initialization",
			Action: &AskService{
				Asset:    asset,
				AskPrice: AskPriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputNotInitialized,
			State:           newAskView(nil),
			Actor:           asker,
		},
		{
			Name: "No ask on missing asset",
			Action: &AskService{
				Asset:    asset,
				AskPrice: AskPriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAssetNotFound,
			State:           newAskView(seedConfig),
			Actor:           asker,
		},
		{
			Name: "One standing ask per asset",
			Action: &AskService{
				Asset:    asset,
				AskPrice: AskPriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAskAlreadyExists,
			State: newAskView(func(ctx context.Context, m state.Mutable) {
				seedAsset(ctx, m)
				req.NoError(storage.SetAsk(ctx, m, asset, rival, AskPriceTwo))
			}),
			Actor: asker,
		},
		{
			Name: "No ask without funds",
			Action: &AskService{
				Asset:    asset,
				AskPrice: AskPriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     storage.ErrInvalidBalance,
			State:           newAskView(seedAsset),
			Actor:           asker,
		},
		{
			Name: "Correct ask escrows the offer",
			Action: &AskService{
				Asset:    asset,
				AskPrice: AskPriceOne,
			},
			ExpectedOutputs: &AskServiceResult{},
			ExpectedErr:     nil,
			State: newAskView(func(ctx context.Context, m state.Mutable) {
				seedAsset(ctx, m)
				req.NoError(storage.SetBalance(ctx, m, asker, AskPriceTwo))
			}),
			Actor: asker,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				recordAsker, askPrice, exists, err := storage.GetAskNoController(ctx, m, asset)
				req.NoError(err)
				req.True(exists)
				req.Equal(asker, recordAsker)
				req.Equal(AskPriceOne, askPrice)

				askerBalance, err := storage.GetBalance(ctx, m, asker)
				req.NoError(err)
				req.Equal(AskPriceTwo-AskPriceOne, askerBalance)

				escrowBalance, err := storage.GetBalance(ctx, m, escrow)
				req.NoError(err)
				req.Equal(AskPriceOne, escrowBalance)
			},
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
