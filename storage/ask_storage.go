// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Contains read/write logic for standing offers (asks).
package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"

	mconsts "github.com/toanbt173404/two-sided-services-marketplace/consts"
)

// [askPrefix] + [assetID]
//
// One ask per asset: the deterministic key makes a second open ask collide
// with the first.
func AskStateKey(assetID ids.ID) (k []byte) {
	k = make([]byte, 1+ids.IDLen+consts.Uint16Len)
	k[0] = askPrefix
	copy(k[1:], assetID[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], AskChunks)
	return
}

// AskEscrowAddress holds the offered funds from ask creation until the ask
// is accepted or repriced downward.
func AskEscrowAddress(assetID ids.ID) codec.Address {
	return codec.CreateAddress(mconsts.ESCROWID, assetID)
}

// asker | askPrice
func SetAsk(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
	asker codec.Address,
	askPrice uint64,
) error {
	v := make([]byte, codec.AddressLen+consts.Uint64Len)
	copy(v, asker[:])
	binary.BigEndian.PutUint64(v[codec.AddressLen:], askPrice)
	return mu.Insert(ctx, AskStateKey(assetID), v)
}

func GetAskNoController(
	ctx context.Context,
	im state.Immutable,
	assetID ids.ID,
) (codec.Address, uint64, bool, error) {
	v, err := im.GetValue(ctx, AskStateKey(assetID))
	return innerGetAsk(v, err)
}

// Used to serve RPC queries
func GetAskFromState(
	ctx context.Context,
	f ReadState,
	assetID ids.ID,
) (codec.Address, uint64, bool, error) {
	values, errs := f(ctx, [][]byte{AskStateKey(assetID)})
	return innerGetAsk(values[0], errs[0])
}

func innerGetAsk(
	v []byte,
	err error,
) (asker codec.Address, askPrice uint64, exists bool, rerr error) {
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, 0, false, nil
	}
	if err != nil {
		return codec.EmptyAddress, 0, false, err
	}
	asker = codec.Address(v[:codec.AddressLen])
	askPrice = binary.BigEndian.Uint64(v[codec.AddressLen:])
	return asker, askPrice, true, nil
}

func RemoveAsk(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
) error {
	return mu.Remove(ctx, AskStateKey(assetID))
}
