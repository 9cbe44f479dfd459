// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

func TestRoyaltySplit(t *testing.T) {
	tests := []struct {
		name                  string
		price                 uint64
		royaltyFeeBasisPoints uint16
		royalty               uint64
		remainder             uint64
		wantErr               bool
	}{
		{
			name:                  "zero rate pays the seller in full",
			price:                 1_000,
			royaltyFeeBasisPoints: 0,
			royalty:               0,
			remainder:             1_000,
		},
		{
			name:                  "full rate pays the original vendor in full",
			price:                 1_000,
			royaltyFeeBasisPoints: storage.MaxRoyaltyFeeBasisPoints,
			royalty:               1_000,
			remainder:             0,
		},
		{
			name:                  "five percent of one thousand",
			price:                 1_000,
			royaltyFeeBasisPoints: 500,
			royalty:               50,
			remainder:             950,
		},
		{
			name:                  "fractional royalty rounds down",
			price:                 999,
			royaltyFeeBasisPoints: 1,
			royalty:               0,
			remainder:             999,
		},
		{
			name:                  "overflowing product is rejected",
			price:                 math.MaxUint64,
			royaltyFeeBasisPoints: 2,
			wantErr:               true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)

			royalty, remainder, err := royaltySplit(test.price, test.royaltyFeeBasisPoints)
			if test.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(test.royalty, royalty)
			req.Equal(test.remainder, remainder)
		})
	}
}
