// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Contains read/write logic for the marketplace configuration singleton.
package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/consts"
	"github.com/ava-labs/hypersdk/state"
)

// [configPrefix]
//
// The config record is a process-wide singleton; its existence doubles as
// the initialized flag.
func ConfigKey() (k []byte) {
	k = make([]byte, 1+consts.Uint16Len)
	k[0] = configPrefix
	binary.BigEndian.PutUint16(k[1:], ConfigChunks)
	return
}

// admin | royaltyFeeBasisPoints
func SetConfig(
	ctx context.Context,
	mu state.Mutable,
	admin codec.Address,
	royaltyFeeBasisPoints uint16,
) error {
	v := make([]byte, codec.AddressLen+consts.Uint16Len)
	copy(v, admin[:])
	binary.BigEndian.PutUint16(v[codec.AddressLen:], royaltyFeeBasisPoints)
	return mu.Insert(ctx, ConfigKey(), v)
}

func GetConfigNoController(
	ctx context.Context,
	im state.Immutable,
) (admin codec.Address, royaltyFeeBasisPoints uint16, exists bool, err error) {
	v, err := im.GetValue(ctx, ConfigKey())
	return innerGetConfig(v, err)
}

// Used to serve RPC queries
func GetConfigFromState(
	ctx context.Context,
	f ReadState,
) (codec.Address, uint16, bool, error) {
	values, errs := f(ctx, [][]byte{ConfigKey()})
	return innerGetConfig(values[0], errs[0])
}

func innerGetConfig(
	v []byte,
	err error,
) (codec.Address, uint16, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, 0, false, nil
	}
	if err != nil {
		return codec.EmptyAddress, 0, false, err
	}
	admin := codec.Address(v[:codec.AddressLen])
	royaltyFeeBasisPoints := binary.BigEndian.Uint16(v[codec.AddressLen:])
	return admin, royaltyFeeBasisPoints, true, nil
}
