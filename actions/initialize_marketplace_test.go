// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/state/tstate"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

func TestInitializeMarketplace(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	admin := codectest.NewRandomAddress()

	parentState := ts.NewView(
		state.Keys{
			string(storage.ConfigKey()): state.All,
		},
		chaintest.NewInMemoryStore().Storage,
	)

	tests := []chaintest.ActionTest{
		{
			Name: "No royalty rate above one hundred percent",
			Action: &InitializeMarketplace{
				RoyaltyFeeBasisPoints: storage.MaxRoyaltyFeeBasisPoints + 1,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInvalidRoyaltyRate,
			State:           parentState,
			Actor:           admin,
		},
		{
			Name: "Correct initialization is allowed",
			Action: &InitializeMarketplace{
				RoyaltyFeeBasisPoints: RoyaltyFeeBasisPoints,
			},
			ExpectedOutputs: &InitializeMarketplaceResult{},
			ExpectedErr:     nil,
			State:           parentState,
			Actor:           admin,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				configAdmin, royaltyFeeBasisPoints, exists, err := storage.GetConfigNoController(ctx, m)
				req.NoError(err)
				req.True(exists)
				req.Equal(admin, configAdmin)
				req.Equal(RoyaltyFeeBasisPoints, royaltyFeeBasisPoints)
			},
		},
		{
			Name: "No reinitialization",
			Action: &InitializeMarketplace{
				RoyaltyFeeBasisPoints: UpdatedRoyaltyFeeBasisPoints,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAlreadyInitialized,
			State:           parentState,
			Actor:           codectest.NewRandomAddress(),
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
