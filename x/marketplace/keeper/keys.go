package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// ProviderKeyPrefix is the prefix for provider storage
	ProviderKeyPrefix = []byte{0x02}

	// JobKeyPrefix is the prefix for job storage
	JobKeyPrefix = []byte{0x03}

	// NextJobIDKey is the key for the next job ID counter
	NextJobIDKey = []byte{0x04}

	// JobsByProviderPrefix is the prefix for indexing jobs by provider
	JobsByProviderPrefix = []byte{0x05}

	// JobsByClientPrefix is the prefix for indexing jobs by client
	JobsByClientPrefix = []byte{0x06}

	// ProviderSeqPrefix is the registration-order index.
	// Key: prefix + seq (big endian) -> provider address bytes
	ProviderSeqPrefix = []byte{0x07}

	// NextProviderSeqKey is the key for the next provider sequence counter
	NextProviderSeqKey = []byte{0x08}

	// ActiveProvidersPrefix is the prefix for indexing active providers
	ActiveProvidersPrefix = []byte{0x09}
)

// ProviderKey returns the store key for a provider
func ProviderKey(address sdk.AccAddress) []byte {
	return append(ProviderKeyPrefix, address.Bytes()...)
}

// JobKey returns the store key for a job
func JobKey(jobID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, jobID)
	return append(JobKeyPrefix, bz...)
}

// JobByProviderKey returns the index key for jobs by provider
func JobByProviderKey(provider sdk.AccAddress, jobID uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, jobID)
	return append(append(JobsByProviderPrefix, provider.Bytes()...), idBz...)
}

// JobsByProviderIterKey returns the iteration prefix for one provider's jobs
func JobsByProviderIterKey(provider sdk.AccAddress) []byte {
	return append(JobsByProviderPrefix, provider.Bytes()...)
}

// JobByClientKey returns the index key for jobs by client
func JobByClientKey(client sdk.AccAddress, jobID uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, jobID)
	return append(append(JobsByClientPrefix, client.Bytes()...), idBz...)
}

// JobsByClientIterKey returns the iteration prefix for one client's jobs
func JobsByClientIterKey(client sdk.AccAddress) []byte {
	return append(JobsByClientPrefix, client.Bytes()...)
}

// ProviderSeqKey returns the registration-order index key for a sequence
func ProviderSeqKey(seq uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seq)
	return append(ProviderSeqPrefix, bz...)
}

// ActiveProviderKey returns the index key for an active provider
func ActiveProviderKey(address sdk.AccAddress) []byte {
	return append(ActiveProvidersPrefix, address.Bytes()...)
}

// GetIDFromBytes converts big endian bytes to an ID
func GetIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// GetIDBytes converts an ID to big endian bytes
func GetIDBytes(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return bz
}
