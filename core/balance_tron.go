package core

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/mr-tron/base58"
)

// sunPerTRX is the smallest Tron unit per whole TRX.
const sunPerTRX = 1_000_000.0

// CheckTronBalance queries Tron's EVM-compatible JSON-RPC endpoint for
// address's balance. Tron exposes eth_getBalance against the hex form of
// its raw 21-byte address payload (stripped of its base58check checksum
// and 0x41 prefix byte), same as any EVM chain.
func CheckTronBalance(ctx context.Context, limiter *RateLimiter, rpcURL, address string) (BalanceResult, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return BalanceResult{}, fmt.Errorf("decode tron address: %w", err)
	}
	if len(decoded) < 5 {
		return BalanceResult{}, fmt.Errorf("tron address too short")
	}
	payload := decoded[:len(decoded)-4] // drop the 4-byte checksum
	evmHex := "0x" + hex.EncodeToString(payload[1:])

	var result BalanceResult
	err = limiter.Execute(ctx, func(ctx context.Context) error {
		return RetryWithBackoff(ctx, 3, 1*time.Second, func(ctx context.Context) error {
			var hexBalance string
			if err := callJSONRPC(ctx, rpcURL, "eth_getBalance", []interface{}{evmHex, "latest"}, &hexBalance); err != nil {
				return err
			}
			sun, err := hexToBigInt(hexBalance)
			if err != nil {
				return err
			}
			trx := new(big.Float).Quo(new(big.Float).SetInt(sun), big.NewFloat(sunPerTRX))
			result = BalanceResult{
				Display: trx.Text('f', 6),
				NonZero: sun.Sign() > 0,
			}
			return nil
		})
	})
	return result, err
}
