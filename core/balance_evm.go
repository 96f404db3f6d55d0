package core

import (
	"context"
	"time"
)

// CheckEVMBalance queries rpcURL's eth_getBalance for address's latest
// balance, retrying rate-limited and transient failures. The result is
// reported in wei, the network's smallest unit, not converted to ether.
func CheckEVMBalance(ctx context.Context, limiter *RateLimiter, rpcURL, address string) (BalanceResult, error) {
	var result BalanceResult
	err := limiter.Execute(ctx, func(ctx context.Context) error {
		return RetryWithBackoff(ctx, 3, 1*time.Second, func(ctx context.Context) error {
			var hexBalance string
			if err := callJSONRPC(ctx, rpcURL, "eth_getBalance", []interface{}{address, "latest"}, &hexBalance); err != nil {
				return err
			}
			wei, err := hexToBigInt(hexBalance)
			if err != nil {
				return err
			}
			result = BalanceResult{
				Display: wei.String(),
				NonZero: wei.Sign() > 0,
			}
			return nil
		})
	})
	return result, err
}
