// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

// royaltySplit divides a secondary-sale price into the royalty owed to the
// original vendor and the remainder owed to the seller.
func royaltySplit(price uint64, royaltyFeeBasisPoints uint16) (royalty uint64, remainder uint64, err error) {
	royalty, err = smath.Mul(price, uint64(royaltyFeeBasisPoints))
	if err != nil {
		return 0, 0, err
	}
	royalty /= uint64(storage.MaxRoyaltyFeeBasisPoints)
	remainder, err = smath.Sub(price, royalty)
	if err != nil {
		return 0, 0, err
	}
	return royalty, remainder, nil
}
