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

	"github.com/medas-network/medas/x/marketplace/types"
)

// setupKeeperForTest creates a test keeper for internal package tests.
// This mirrors the testutil/keeper/marketplace.go setup for use in _test.go
// files within the keeper package that need to test unexported functions.
func setupKeeperForTest(t *testing.T) (*Keeper, sdk.Context) {
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

	k := NewKeeper(
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

	return k, sdkCtx
}

// fundAccountForTest funds a test account with umedas
func fundAccountForTest(t *testing.T, k *Keeper, ctx sdk.Context, addr sdk.AccAddress, amount math.Int) {
	t.Helper()

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))
	require.NoError(t, k.bankKeeper.MintCoins(ctx, types.ModuleName, coins))
	require.NoError(t, k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins))
}

// registerTestProvider registers a provider with a single capability
func registerTestProvider(t *testing.T, k *Keeper, ctx sdk.Context, provider sdk.AccAddress, serviceType string) {
	t.Helper()

	err := k.RegisterProvider(ctx, provider, "test provider",
		[]types.ServiceCapability{{ServiceType: serviceType, MaxComplexity: 10, AvgCompletionTime: 60}},
		map[string]types.PricingTier{serviceType: {BasePrice: math.NewInt(1000), Unit: "per_job"}},
		"https://provider.example.com",
	)
	require.NoError(t, err)
}
