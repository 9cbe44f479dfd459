// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidBalance = errors.New("invalid balance")

	ErrAssetAlreadyExists = errors.New("asset already exists")
	ErrAssetMissing       = errors.New("asset does not exist")
	ErrNotAssetOwner      = errors.New("not asset owner")
)
