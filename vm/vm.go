// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/extension/externalsubscriber"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/toanbt173404/two-sided-services-marketplace/actions"
	"github.com/toanbt173404/two-sided-services-marketplace/consts"
	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		// Pass nil as second argument if manual marshalling isn't needed (if in doubt, you probably don't)
		ActionParser.Register(&actions.InitializeMarketplace{}, nil),
		ActionParser.Register(&actions.UpdateRoyalty{}, nil),
		ActionParser.Register(&actions.CreateService{}, nil),
		ActionParser.Register(&actions.BuyService{}, nil),
		ActionParser.Register(&actions.UpdateServicePrice{}, nil),
		ActionParser.Register(&actions.AskService{}, nil),
		ActionParser.Register(&actions.UpdateAskPrice{}, nil),
		ActionParser.Register(&actions.AcceptAsk{}, nil),
		ActionParser.Register(&actions.WithdrawService{}, nil),

		// When registering new auth, ALWAYS make sure to append at the end.
		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),

		// When registering new outputs, ALWAYS make sure to append at the end.
		OutputParser.Register(&actions.InitializeMarketplaceResult{}, nil),
		OutputParser.Register(&actions.UpdateRoyaltyResult{}, nil),
		OutputParser.Register(&actions.CreateServiceResult{}, nil),
		OutputParser.Register(&actions.BuyServiceResult{}, nil),
		OutputParser.Register(&actions.UpdateServicePriceResult{}, nil),
		OutputParser.Register(&actions.AskServiceResult{}, nil),
		OutputParser.Register(&actions.UpdateAskPriceResult{}, nil),
		OutputParser.Register(&actions.AcceptAskResult{}, nil),
		OutputParser.Register(&actions.WithdrawServiceResult{}, nil),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// New returns a VM with the indexer, websocket, rpc, and marketplace apis
// enabled.
func New(options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add marketplace API
		externalsubscriber.With(),
	}, options...)

	return NewWithOptions(opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(options ...vm.Option) (*vm.VM, error) {
	return vm.New(
		consts.Version,
		genesis.DefaultGenesisFactory{},
		&storage.StateManager{},
		ActionParser,
		AuthParser,
		OutputParser,
		auth.Engines(),
		options...,
	)
}
