// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Asset registry adapter. The marketplace never mutates asset ownership
// bytes directly; every custody movement goes through these primitives.
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
)

// [assetPrefix] + [assetID]
func AssetStateKey(assetID ids.ID) (k []byte) {
	k = make([]byte, 1+ids.IDLen+consts.Uint16Len)
	k[0] = assetPrefix
	copy(k[1:], assetID[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], AssetChunks)
	return
}

// MintAsset issues one indivisible unit of [assetID] to [owner].
func MintAsset(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
	owner codec.Address,
) error {
	k := AssetStateKey(assetID)
	if _, err := mu.GetValue(ctx, k); err == nil {
		return ErrAssetAlreadyExists
	} else if !errors.Is(err, database.ErrNotFound) {
		return err
	}
	return setAssetOwner(ctx, mu, k, owner)
}

// TransferAsset moves [assetID] from [from] to [to]. Fails if [from] is not
// the registered owner.
func TransferAsset(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
	from codec.Address,
	to codec.Address,
) error {
	k := AssetStateKey(assetID)
	owner, exists, err := innerGetAssetOwner(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetMissing
	}
	if owner != from {
		return ErrNotAssetOwner
	}
	return setAssetOwner(ctx, mu, k, to)
}

// BurnAsset destroys [assetID]. Fails if [from] is not the registered owner.
func BurnAsset(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
	from codec.Address,
) error {
	k := AssetStateKey(assetID)
	owner, exists, err := innerGetAssetOwner(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetMissing
	}
	if owner != from {
		return ErrNotAssetOwner
	}
	return mu.Remove(ctx, k)
}

func GetAssetOwnerNoController(
	ctx context.Context,
	im state.Immutable,
	assetID ids.ID,
) (codec.Address, bool, error) {
	return innerGetAssetOwner(im.GetValue(ctx, AssetStateKey(assetID)))
}

// Used to serve RPC queries
func GetAssetOwnerFromState(
	ctx context.Context,
	f ReadState,
	assetID ids.ID,
) (codec.Address, bool, error) {
	values, errs := f(ctx, [][]byte{AssetStateKey(assetID)})
	return innerGetAssetOwner(values[0], errs[0])
}

func innerGetAssetOwner(
	v []byte,
	err error,
) (codec.Address, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, false, nil
	}
	if err != nil {
		return codec.EmptyAddress, false, err
	}
	return codec.Address(v[:codec.AddressLen]), true, nil
}

func setAssetOwner(
	ctx context.Context,
	mu state.Mutable,
	key []byte,
	owner codec.Address,
) error {
	v := make([]byte, codec.AddressLen)
	copy(v, owner[:])
	return mu.Insert(ctx, key, v)
}
