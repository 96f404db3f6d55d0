package core

import (
	"context"
	"strconv"
	"time"
)

// CheckSolanaBalance queries a Solana JSON-RPC endpoint's getBalance for
// address. The result is reported in lamports, the network's smallest
// unit, not converted to SOL.
func CheckSolanaBalance(ctx context.Context, limiter *RateLimiter, rpcURL, address string) (BalanceResult, error) {
	var result BalanceResult
	err := limiter.Execute(ctx, func(ctx context.Context) error {
		return RetryWithBackoff(ctx, 3, 1*time.Second, func(ctx context.Context) error {
			var payload struct {
				Value uint64 `json:"value"`
			}
			if err := callJSONRPC(ctx, rpcURL, "getBalance", []interface{}{address}, &payload); err != nil {
				return err
			}
			result = BalanceResult{
				Display: strconv.FormatUint(payload.Value, 10),
				NonZero: payload.Value > 0,
			}
			return nil
		})
	})
	return result, err
}
