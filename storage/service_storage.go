// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Contains read/write logic for service listings.
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

// Agreement is one term sheet entry attached to a service at listing time.
// Agreements are immutable for the lifetime of the listing.
type Agreement struct {
	Title   string `serialize:"true" json:"title"`
	Details string `serialize:"true" json:"details"`
}

// [servicePrefix] + [assetID]
func ServiceStateKey(assetID ids.ID) (k []byte) {
	k = make([]byte, 1+ids.IDLen+consts.Uint16Len)
	k[0] = servicePrefix
	copy(k[1:], assetID[:])
	binary.BigEndian.PutUint16(k[1+ids.IDLen:], ServiceChunks)
	return
}

// isSoulbound | originalVendor | currentVendor | price | agreementCount |
// [titleLen | title | detailsLen | details] ...
func SetService(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
	isSoulbound bool,
	originalVendor codec.Address,
	currentVendor codec.Address,
	price uint64,
	agreements []Agreement,
) error {
	servicesLen := 0
	for _, a := range agreements {
		servicesLen += consts.Uint16Len + len(a.Title) + consts.Uint16Len + len(a.Details)
	}
	v := make([]byte, 1+codec.AddressLen*2+consts.Uint64Len+consts.Uint16Len+servicesLen)

	if isSoulbound {
		v[0] = 1
	}
	offset := 1
	copy(v[offset:], originalVendor[:])
	offset += codec.AddressLen
	copy(v[offset:], currentVendor[:])
	offset += codec.AddressLen
	binary.BigEndian.PutUint64(v[offset:], price)
	offset += consts.Uint64Len
	binary.BigEndian.PutUint16(v[offset:], uint16(len(agreements)))
	offset += consts.Uint16Len
	for _, a := range agreements {
		binary.BigEndian.PutUint16(v[offset:], uint16(len(a.Title)))
		offset += consts.Uint16Len
		copy(v[offset:], a.Title)
		offset += len(a.Title)
		binary.BigEndian.PutUint16(v[offset:], uint16(len(a.Details)))
		offset += consts.Uint16Len
		copy(v[offset:], a.Details)
		offset += len(a.Details)
	}

	return mu.Insert(ctx, ServiceStateKey(assetID), v)
}

func GetServiceNoController(
	ctx context.Context,
	im state.Immutable,
	assetID ids.ID,
) (bool, codec.Address, codec.Address, uint64, []Agreement, bool, error) {
	v, err := im.GetValue(ctx, ServiceStateKey(assetID))
	return innerGetService(v, err)
}

// Used to serve RPC queries
func GetServiceFromState(
	ctx context.Context,
	f ReadState,
	assetID ids.ID,
) (bool, codec.Address, codec.Address, uint64, []Agreement, bool, error) {
	values, errs := f(ctx, [][]byte{ServiceStateKey(assetID)})
	return innerGetService(values[0], errs[0])
}

func innerGetService(
	v []byte,
	err error,
) (isSoulbound bool, originalVendor codec.Address, currentVendor codec.Address, price uint64, agreements []Agreement, exists bool, rerr error) {
	if errors.Is(err, database.ErrNotFound) {
		return false, codec.EmptyAddress, codec.EmptyAddress, 0, nil, false, nil
	}
	if err != nil {
		return false, codec.EmptyAddress, codec.EmptyAddress, 0, nil, false, err
	}

	isSoulbound = v[0] == 1
	offset := 1
	originalVendor = codec.Address(v[offset : offset+codec.AddressLen])
	offset += codec.AddressLen
	currentVendor = codec.Address(v[offset : offset+codec.AddressLen])
	offset += codec.AddressLen
	price = binary.BigEndian.Uint64(v[offset:])
	offset += consts.Uint64Len
	agreementCount := int(binary.BigEndian.Uint16(v[offset:]))
	offset += consts.Uint16Len
	agreements = make([]Agreement, 0, agreementCount)
	for i := 0; i < agreementCount; i++ {
		titleLen := int(binary.BigEndian.Uint16(v[offset:]))
		offset += consts.Uint16Len
		title := string(v[offset : offset+titleLen])
		offset += titleLen
		detailsLen := int(binary.BigEndian.Uint16(v[offset:]))
		offset += consts.Uint16Len
		details := string(v[offset : offset+detailsLen])
		offset += detailsLen
		agreements = append(agreements, Agreement{Title: title, Details: details})
	}

	return isSoulbound, originalVendor, currentVendor, price, agreements, true, nil
}

// RemoveService closes a listing permanently; the asset can only be re-listed
// under a fresh record.
func RemoveService(
	ctx context.Context,
	mu state.Mutable,
	assetID ids.ID,
) error {
	return mu.Remove(ctx, ServiceStateKey(assetID))
}
