package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const (
	// PriceDecimals is the fixed-point scale of wire prices (1e8)
	PriceDecimals = 8

	// priceRecordSize is the wire size of one (assetIndex, price) record:
	// 2-byte big-endian asset index followed by a 6-byte big-endian price.
	priceRecordSize = 8

	// MaxAssetIndex is the largest asset index expressible on the wire
	MaxAssetIndex = 1<<16 - 1

	// MaxWirePrice is the largest price expressible in 6 bytes
	MaxWirePrice = 1<<48 - 1

	// SignatureLength is the length of a recoverable signature (r || s || v)
	SignatureLength = 65
)

// PricePoint is one decoded (assetIndex, price) pair of a price vector
type PricePoint struct {
	AssetIndex uint32 `json:"asset_index"`
	Price      uint64 `json:"price"`
}

// SignedSubmission is one signer's contribution to a fulfillment bundle.
// The signature covers the request's creation timestamp and the raw price
// vector bytes, so a submission cannot be replayed against another request.
type SignedSubmission struct {
	Signer      string `json:"signer"`
	Signature   []byte `json:"signature"`
	Timestamp   int64  `json:"timestamp"`
	PriceVector []byte `json:"price_vector"`
}

// EncodePriceVector packs price points into the compact wire form: fixed-width
// 8-byte records, no separators or length prefix.
func EncodePriceVector(points []PricePoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("price vector cannot be empty")
	}

	bz := make([]byte, 0, len(points)*priceRecordSize)
	for _, p := range points {
		if p.AssetIndex > MaxAssetIndex {
			return nil, fmt.Errorf("asset index %d exceeds wire maximum %d", p.AssetIndex, MaxAssetIndex)
		}
		if p.Price > MaxWirePrice {
			return nil, fmt.Errorf("price %d exceeds wire maximum %d", p.Price, uint64(MaxWirePrice))
		}

		var rec [priceRecordSize]byte
		binary.BigEndian.PutUint16(rec[0:2], uint16(p.AssetIndex))
		binary.BigEndian.PutUint16(rec[2:4], uint16(p.Price>>32))
		binary.BigEndian.PutUint32(rec[4:8], uint32(p.Price))
		bz = append(bz, rec[:]...)
	}

	return bz, nil
}

// DecodePriceVector unpacks a wire price vector. The vector length is implied
// by the total byte length, so anything that is not a whole number of records
// is rejected.
func DecodePriceVector(bz []byte) ([]PricePoint, error) {
	if len(bz) == 0 {
		return nil, fmt.Errorf("price vector cannot be empty")
	}
	if len(bz)%priceRecordSize != 0 {
		return nil, fmt.Errorf("price vector length %d is not a multiple of %d", len(bz), priceRecordSize)
	}

	points := make([]PricePoint, 0, len(bz)/priceRecordSize)
	for off := 0; off < len(bz); off += priceRecordSize {
		idx := binary.BigEndian.Uint16(bz[off : off+2])
		hi := binary.BigEndian.Uint16(bz[off+2 : off+4])
		lo := binary.BigEndian.Uint32(bz[off+4 : off+8])
		points = append(points, PricePoint{
			AssetIndex: uint32(idx),
			Price:      uint64(hi)<<32 | uint64(lo),
		})
	}

	return points, nil
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenated inputs
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// SubmissionDigest is the hash a signer commits to: the request's creation
// timestamp as a 32-byte big-endian integer followed by the raw vector bytes.
func SubmissionDigest(requestTimestamp int64, priceVector []byte) []byte {
	var ts [32]byte
	binary.BigEndian.PutUint64(ts[24:], uint64(requestTimestamp))
	return Keccak256(ts[:], priceVector)
}

// SignSubmission produces the 65-byte r || s || v signature over a price
// vector for the given request timestamp. Used by off-chain signers and tests.
func SignSubmission(key *secp256k1.PrivateKey, requestTimestamp int64, priceVector []byte) []byte {
	compact := ecdsa.SignCompact(key, SubmissionDigest(requestTimestamp, priceVector), false)

	// SignCompact puts the recovery header first; the wire format wants it last.
	sig := make([]byte, SignatureLength)
	copy(sig[0:64], compact[1:65])
	sig[64] = compact[0]
	return sig
}

// RecoverSubmissionSigner recovers the signing address from a submission's
// signature over (requestTimestamp, priceVector).
func RecoverSubmissionSigner(requestTimestamp int64, priceVector, signature []byte) (string, error) {
	if len(signature) != SignatureLength {
		return "", fmt.Errorf("signature must be %d bytes, got %d", SignatureLength, len(signature))
	}

	v := signature[64]
	if v < 27 {
		// Accept the 0/1 recovery id convention as well
		v += 27
	}
	if v != 27 && v != 28 {
		return "", fmt.Errorf("invalid recovery id %d", signature[64])
	}

	compact := make([]byte, SignatureLength)
	compact[0] = v
	copy(compact[1:], signature[0:64])

	pub, _, err := ecdsa.RecoverCompact(compact, SubmissionDigest(requestTimestamp, priceVector))
	if err != nil {
		return "", fmt.Errorf("recover signer: %w", err)
	}

	return PubKeyAddress(pub), nil
}

// PubKeyAddress derives the 20-byte signer address from a public key: the
// trailing 20 bytes of the Keccak-256 hash of the uncompressed key material.
func PubKeyAddress(pub *secp256k1.PublicKey) string {
	unc := pub.SerializeUncompressed()
	digest := Keccak256(unc[1:])
	return "0x" + hex.EncodeToString(digest[12:])
}

// NormalizeSignerAddress lower-cases a hex signer address and validates its shape
func NormalizeSignerAddress(addr string) (string, error) {
	a := strings.ToLower(strings.TrimSpace(addr))
	if !strings.HasPrefix(a, "0x") || len(a) != 42 {
		return "", fmt.Errorf("signer address must be 0x-prefixed 20-byte hex, got %q", addr)
	}
	if _, err := hex.DecodeString(a[2:]); err != nil {
		return "", fmt.Errorf("signer address is not valid hex: %w", err)
	}
	return a, nil
}
