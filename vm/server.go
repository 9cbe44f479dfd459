// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/toanbt173404/two-sided-services-marketplace/consts"
	"github.com/toanbt173404/two-sided-services-marketplace/storage"
)

const JSONRPCEndpoint = "/servicesapi"

var (
	ErrMarketplaceNotInitialized = errors.New("marketplace not initialized")
	ErrServiceNotFound           = errors.New("service not found")
	ErrAskNotFound               = errors.New("ask not found")
	ErrAssetNotFound             = errors.New("asset not found")
)

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type BalanceArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Balance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type MarketplaceReply struct {
	Admin                 codec.Address `json:"admin"`
	RoyaltyFeeBasisPoints uint16        `json:"royaltyFeeBasisPoints"`
}

func (j *JSONRPCServer) Marketplace(req *http.Request, _ *struct{}, reply *MarketplaceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Marketplace")
	defer span.End()

	admin, royaltyFeeBasisPoints, exists, err := storage.GetConfigFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	if !exists {
		return ErrMarketplaceNotInitialized
	}
	reply.Admin = admin
	reply.RoyaltyFeeBasisPoints = royaltyFeeBasisPoints
	return nil
}

type ServiceArgs struct {
	Asset ids.ID `json:"asset"`
}

type ServiceReply struct {
	IsSoulbound    bool                `json:"isSoulbound"`
	OriginalVendor codec.Address       `json:"originalVendor"`
	CurrentVendor  codec.Address       `json:"currentVendor"`
	Price          uint64              `json:"price"`
	Agreements     []storage.Agreement `json:"agreements"`
}

func (j *JSONRPCServer) Service(req *http.Request, args *ServiceArgs, reply *ServiceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Service")
	defer span.End()

	isSoulbound, originalVendor, currentVendor, price, agreements, exists, err := storage.GetServiceFromState(ctx, j.vm.ReadState, args.Asset)
	if err != nil {
		return err
	}
	if !exists {
		return ErrServiceNotFound
	}
	reply.IsSoulbound = isSoulbound
	reply.OriginalVendor = originalVendor
	reply.CurrentVendor = currentVendor
	reply.Price = price
	reply.Agreements = agreements
	return nil
}

type AskArgs struct {
	Asset ids.ID `json:"asset"`
}

type AskReply struct {
	Asker    codec.Address `json:"asker"`
	AskPrice uint64        `json:"askPrice"`
}

func (j *JSONRPCServer) Ask(req *http.Request, args *AskArgs, reply *AskReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.Ask")
	defer span.End()

	asker, askPrice, exists, err := storage.GetAskFromState(ctx, j.vm.ReadState, args.Asset)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAskNotFound
	}
	reply.Asker = asker
	reply.AskPrice = askPrice
	return nil
}

type AssetOwnerArgs struct {
	Asset ids.ID `json:"asset"`
}

type AssetOwnerReply struct {
	Owner codec.Address `json:"owner"`
}

func (j *JSONRPCServer) AssetOwner(req *http.Request, args *AssetOwnerArgs, reply *AssetOwnerReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.AssetOwner")
	defer span.End()

	owner, exists, err := storage.GetAssetOwnerFromState(ctx, j.vm.ReadState, args.Asset)
	if err != nil {
		return err
	}
	if !exists {
		return ErrAssetNotFound
	}
	reply.Owner = owner
	return nil
}
