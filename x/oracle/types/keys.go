package types

import (
	"encoding/binary"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

var (
	// ModuleNamespace is the namespace byte for the Oracle module (0x01)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x01)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01, 0x01}

	// RequestKeyPrefix is the prefix for price request records
	RequestKeyPrefix = []byte{0x01, 0x02}

	// RequestCountKey stores the next request id to allocate.
	// Ids are dense: the counter is the single source of id allocation.
	RequestCountKey = []byte{0x01, 0x03}

	// PriceFeedKeyPrefix is the prefix for per-asset price records
	PriceFeedKeyPrefix = []byte{0x01, 0x04}

	// SignerKeyPrefix is the prefix for registered off-chain signers
	SignerKeyPrefix = []byte{0x01, 0x05}

	// QuorumKey stores the signature threshold for fulfillments
	QuorumKey = []byte{0x01, 0x06}

	// ControllerKeyPrefix is the prefix for the relay (controller) allow-list
	ControllerKeyPrefix = []byte{0x01, 0x07}

	// WhitelistKeyPrefix is the prefix for the optional consumer whitelist
	WhitelistKeyPrefix = []byte{0x01, 0x08}

	// AdminKeyPrefix is the prefix for module administrators
	AdminKeyPrefix = []byte{0x01, 0x09}

	// LastAdvancingRequestKey stores the high-water mark: the highest request id
	// that has ever advanced the latest price view. Absent until the first
	// successful fulfillment.
	LastAdvancingRequestKey = []byte{0x01, 0x0A}
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for oracle parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// GetRequestKey returns the store key for a request by id
func GetRequestKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(RequestKeyPrefix, bz...)
}

// GetPriceFeedKey returns the store key for a price feed by asset index
func GetPriceFeedKey(assetIndex uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, assetIndex)
	return append(PriceFeedKeyPrefix, bz...)
}

// GetSignerKey returns the store key for a signer record
func GetSignerKey(address string) []byte {
	return append(SignerKeyPrefix, []byte(address)...)
}

// GetControllerKey returns the store key for a controller allow-list entry
func GetControllerKey(address string) []byte {
	return append(ControllerKeyPrefix, []byte(address)...)
}

// GetWhitelistKey returns the store key for a consumer whitelist entry
func GetWhitelistKey(address string) []byte {
	return append(WhitelistKeyPrefix, []byte(address)...)
}

// GetAdminKey returns the store key for an administrator entry
func GetAdminKey(address string) []byte {
	return append(AdminKeyPrefix, []byte(address)...)
}
