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
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// MockEscrowKeeper is an in-memory fee escrow for tests. Balances are keyed
// by bech32 address; Pay moves funds between them.
type MockEscrowKeeper struct {
	Balances map[string]math.Int
	// Payments records every settlement in order
	Payments []MockPayment
}

type MockPayment struct {
	From   string
	To     string
	Amount math.Int
}

// NewMockEscrowKeeper creates an empty mock escrow
func NewMockEscrowKeeper() *MockEscrowKeeper {
	return &MockEscrowKeeper{Balances: make(map[string]math.Int)}
}

// Fund credits an account's escrow balance
func (m *MockEscrowKeeper) Fund(addr sdk.AccAddress, amount math.Int) {
	existing, ok := m.Balances[addr.String()]
	if !ok {
		existing = math.ZeroInt()
	}
	m.Balances[addr.String()] = existing.Add(amount)
}

func (m *MockEscrowKeeper) BalanceOf(_ context.Context, addr sdk.AccAddress) math.Int {
	if bal, ok := m.Balances[addr.String()]; ok {
		return bal
	}
	return math.ZeroInt()
}

func (m *MockEscrowKeeper) Pay(_ context.Context, from, to sdk.AccAddress, amount math.Int) error {
	fromBal, ok := m.Balances[from.String()]
	if !ok {
		fromBal = math.ZeroInt()
	}
	toBal, ok := m.Balances[to.String()]
	if !ok {
		toBal = math.ZeroInt()
	}
	m.Balances[from.String()] = fromBal.Sub(amount)
	m.Balances[to.String()] = toBal.Add(amount)
	m.Payments = append(m.Payments, MockPayment{From: from.String(), To: to.String(), Amount: amount})
	return nil
}

var _ types.EscrowKeeper = (*MockEscrowKeeper)(nil)

// MockContractKeeper reports contract status from a fixed set
type MockContractKeeper struct {
	Contracts map[string]bool
}

// NewMockContractKeeper creates an empty mock contract registry
func NewMockContractKeeper() *MockContractKeeper {
	return &MockContractKeeper{Contracts: make(map[string]bool)}
}

// Register marks an address as a contract
func (m *MockContractKeeper) Register(addr sdk.AccAddress) {
	m.Contracts[addr.String()] = true
}

func (m *MockContractKeeper) IsContract(_ context.Context, addr sdk.AccAddress) bool {
	return m.Contracts[addr.String()]
}

var _ types.ContractKeeper = (*MockContractKeeper)(nil)

// OracleKeeper creates a test keeper for the oracle module backed by an
// in-memory store, with mock escrow and contract collaborators.
func OracleKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockEscrowKeeper, *MockContractKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	escrow := NewMockEscrowKeeper()
	contracts := NewMockContractKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		escrow,
		contracts,
		types.DefaultAuthority(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, escrow, contracts
}
