package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	marketplacekeeper "github.com/medas-network/medas/x/marketplace/keeper"
	"github.com/medas-network/medas/x/marketplace/types"
)

// MarketplaceKeeper creates a marketplace keeper wired to real auth and bank
// keepers over an in-memory store, for use in tests.
func MarketplaceKeeper(t testing.TB) (*marketplacekeeper.Keeper, bankkeeper.Keeper, sdk.Context) {
	t.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		types.ModuleName:           {authtypes.Minter, authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := marketplacekeeper.NewKeeper(
		storeKey,
		bankKeeper,
		accountKeeper,
		authority.String(),
	)

	header := cmtproto.Header{
		Time: time.Now().UTC(),
	}
	sdkCtx := sdk.NewContext(stateStore, header, false, log.NewNopLogger())
	sdkCtx = sdkCtx.WithContext(context.Background())
	sdkCtx = sdkCtx.WithBlockTime(time.Now().UTC())

	moduleAccount := accountKeeper.NewAccount(sdkCtx, authtypes.NewEmptyModuleAccount(types.ModuleName, authtypes.Minter, authtypes.Burner)).(*authtypes.ModuleAccount)
	accountKeeper.SetModuleAccount(sdkCtx, moduleAccount)

	require.NoError(t, k.InitGenesis(sdkCtx, *types.DefaultGenesis()))

	return k, bankKeeper, sdkCtx
}

// FundAccount mints coins into the module account and moves them to addr.
func FundAccount(t testing.TB, ctx sdk.Context, bankKeeper bankkeeper.Keeper, addr sdk.AccAddress, amount math.Int) {
	t.Helper()

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	require.NoError(t, bankKeeper.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins))
}
