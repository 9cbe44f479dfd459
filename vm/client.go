// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/requester"

	"github.com/toanbt173404/two-sided-services-marketplace/consts"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.DefaultGenesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{req, nil}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.DefaultGenesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Balance(ctx context.Context, address codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"balance",
		&BalanceArgs{
			Address: address,
		},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) Marketplace(ctx context.Context) (*MarketplaceReply, error) {
	resp := new(MarketplaceReply)
	err := cli.requester.SendRequest(
		ctx,
		"marketplace",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Service(ctx context.Context, asset ids.ID) (*ServiceReply, error) {
	resp := new(ServiceReply)
	err := cli.requester.SendRequest(
		ctx,
		"service",
		&ServiceArgs{
			Asset: asset,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) Ask(ctx context.Context, asset ids.ID) (*AskReply, error) {
	resp := new(AskReply)
	err := cli.requester.SendRequest(
		ctx,
		"ask",
		&AskArgs{
			Asset: asset,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) AssetOwner(ctx context.Context, asset ids.ID) (codec.Address, error) {
	resp := new(AssetOwnerReply)
	err := cli.requester.SendRequest(
		ctx,
		"assetOwner",
		&AssetOwnerArgs{
			Asset: asset,
		},
		resp,
	)
	return resp.Owner, err
}
