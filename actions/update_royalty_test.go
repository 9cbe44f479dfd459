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

func TestUpdateRoyalty(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	admin := codectest.NewRandomAddress()
	outsider := codectest.NewRandomAddress()

	newConfigView := func(initialized bool) state.Mutable {
		m := ts.NewView(
			state.Keys{
				string(storage.ConfigKey()): state.All,
			},
			chaintest.NewInMemoryStore().Storage,
		)
		if initialized {
			req.NoError(storage.SetConfig(context.TODO(), m, admin, RoyaltyFeeBasisPoints))
		}
		return m
	}

	tests := []chaintest.ActionTest{
		{
			Name: "No royalty rate above one hundred percent",
			Action: &UpdateRoyalty{
				NewRoyaltyFeeBasisPoints: storage.MaxRoyaltyFeeBasisPoints + 1,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInvalidRoyaltyRate,
			State:           newConfigView(true),
			Actor:           admin,
		},
		{
			Name: "No update before initialization",
			Action: &UpdateRoyalty{
				NewRoyaltyFeeBasisPoints: UpdatedRoyaltyFeeBasisPoints,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputNotInitialized,
			State:           newConfigView(false),
			Actor:           admin,
		},
		{
			Name: "Only admin can update",
			Action: &UpdateRoyalty{
				NewRoyaltyFeeBasisPoints: UpdatedRoyaltyFeeBasisPoints,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputUnauthorized,
			State:           newConfigView(true),
			Actor:           outsider,
		},
		{
			Name: "Admin can update the royalty rate",
			Action: &UpdateRoyalty{
				NewRoyaltyFeeBasisPoints: UpdatedRoyaltyFeeBasisPoints,
			},
			ExpectedOutputs: &UpdateRoyaltyResult{},
			ExpectedErr:     nil,
			State:           newConfigView(true),
			Actor:           admin,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				configAdmin, royaltyFeeBasisPoints, exists, err := storage.GetConfigNoController(ctx, m)
				req.NoError(err)
				req.True(exists)
				req.Equal(admin, configAdmin)
				req.Equal(UpdatedRoyaltyFeeBasisPoints, royaltyFeeBasisPoints)
			},
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
