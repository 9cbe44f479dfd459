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

func TestUpdateServicePrice(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	vendor := codectest.NewRandomAddress()
	outsider := codectest.NewRandomAddress()
	asset := ids.GenerateTestID()

	newServiceView := func(listed bool) state.Mutable {
		m := ts.NewView(
			state.Keys{
				string(storage.ServiceStateKey(asset)): state.All,
			},
			chaintest.NewInMemoryStore().Storage,
		)
		if listed {
			req.NoError(storage.SetService(context.TODO(), m, asset, false, vendor, vendor, ServicePriceOne, baseAgreements()))
		}
		return m
	}

	tests := []chaintest.ActionTest{
		{
			Name: "No repricing of missing service",
			Action: &UpdateServicePrice{
				Asset:    asset,
				NewPrice: ServicePriceTwo,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputServiceNotFound,
			State:           newServiceView(false),
			Actor:           vendor,
		},
		{
			Name: "Only the current vendor can reprice",
			Action: &UpdateServicePrice{
				Asset:    asset,
				NewPrice: ServicePriceTwo,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputUnauthorized,
			State:           newServiceView(true),
			Actor:           outsider,
		},
		{
			Name: "Current vendor can reprice",
			Action: &UpdateServicePrice{
				Asset:    asset,
				NewPrice: ServicePriceTwo,
			},
			ExpectedOutputs: &UpdateServicePriceResult{},
			ExpectedErr:     nil,
			State:           newServiceView(true),
			Actor:           vendor,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				isSoulbound, originalVendor, currentVendor, price, agreements, exists, err := storage.GetServiceNoController(ctx, m, asset)
				req.NoError(err)
				req.True(exists)
				req.False(isSoulbound)
				req.Equal(vendor, originalVendor)
				req.Equal(vendor, currentVendor)
				req.Equal(ServicePriceTwo, price)
				req.Equal(baseAgreements(), agreements)
			},
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
