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

func TestCreateService(t *testing.T) {
	req := require.New(t)
	ts := tstate.New(1)

	vendor := codectest.NewRandomAddress()
	assetOne := ids.GenerateTestID()

	newCreateView := func(initialized bool) state.Mutable {
		m := ts.NewView(
			state.Keys{
				string(storage.ConfigKey()):               state.All,
				string(storage.ServiceStateKey(assetOne)): state.All,
				string(storage.AssetStateKey(assetOne)):   state.All,
			},
			chaintest.NewInMemoryStore().Storage,
		)
		if initialized {
			req.NoError(storage.SetConfig(context.TODO(), m, codectest.NewRandomAddress(), RoyaltyFeeBasisPoints))
		}
		return m
	}

	tests := []chaintest.ActionTest{
		{
			Name: "No service with too many agreements",
			Action: &CreateService{
				Agreements: tooManyAgreements(),
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTooManyAgreements,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
		},
		{
			Name: "No service with empty agreement title",
			Action: &CreateService{
				Agreements: []storage.Agreement{{Title: "", Details: AgreementDetailsOne}},
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAgreementTitleEmpty,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
		},
		{
			Name: "No service with too large agreement title",
			Action: &CreateService{
				Agreements: []storage.Agreement{{Title: TooLargeAgreementTitle, Details: AgreementDetailsOne}},
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAgreementTitleTooLarge,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
		},
		{
			Name: "No service with too large agreement details",
			Action: &CreateService{
				Agreements: []storage.Agreement{{Title: AgreementTitleOne, Details: TooLargeAgreementDetails}},
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputAgreementDetailsTooLarge,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
		},
		{
			Name: "No service before initialization",
			Action: &CreateService{
				Agreements: baseAgreements(),
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputNotInitialized,
			State:           newCreateView(false),
			Actor:           vendor,
			ActionID:        assetOne,
		},
		{
			Name: "Correct service creation is allowed",
			Action: &CreateService{
				Agreements: baseAgreements(),
				Price:      ServicePriceOne,
			},
			ExpectedOutputs: &CreateServiceResult{Asset: assetOne},
			ExpectedErr:     nil,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				isSoulbound, originalVendor, currentVendor, price, agreements, exists, err := storage.GetServiceNoController(ctx, m, assetOne)
				req.NoError(err)
				req.True(exists)
				req.False(isSoulbound)
				req.Equal(vendor, originalVendor)
				req.Equal(vendor, currentVendor)
				req.Equal(ServicePriceOne, price)
				req.Equal(baseAgreements(), agreements)

				owner, assetExists, err := storage.GetAssetOwnerNoController(ctx, m, assetOne)
				req.NoError(err)
				req.True(assetExists)
				req.Equal(storage.CustodyAddress, owner)
			},
		},
		{
			Name: "Soulbound flag is persisted",
			Action: &CreateService{
				IsSoulbound: true,
				Agreements:  baseAgreements(),
				Price:       ServicePriceOne,
			},
			ExpectedOutputs: &CreateServiceResult{Asset: assetOne},
			ExpectedErr:     nil,
			State:           newCreateView(true),
			Actor:           vendor,
			ActionID:        assetOne,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				isSoulbound, _, _, _, _, exists, err := storage.GetServiceNoController(ctx, m, assetOne)
				req.NoError(err)
				req.True(exists)
				req.True(isSoulbound)
			},
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
