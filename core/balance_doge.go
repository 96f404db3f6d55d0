package core

import (
	"context"
	"fmt"
	"time"
)

// satoshisPerDoge is the smallest Dogecoin unit per whole DOGE.
const satoshisPerDoge = 100_000_000.0

// dogeBalanceURL is BlockCypher's balance endpoint for Dogecoin mainnet.
const dogeBalanceURL = "https://api.blockcypher.com/v1/doge/main/addrs/%s/balance"

// CheckDogeBalance queries BlockCypher's REST balance endpoint for
// address. The balance is parsed as an integer satoshi count, not a
// floating-point DOGE amount, to avoid the precision loss a large balance
// would suffer if parsed as float64 directly from the API's JSON number.
func CheckDogeBalance(ctx context.Context, limiter *RateLimiter, address string) (BalanceResult, error) {
	var result BalanceResult
	err := limiter.Execute(ctx, func(ctx context.Context) error {
		return RetryWithBackoff(ctx, 3, 1*time.Second, func(ctx context.Context) error {
			var payload struct {
				FinalBalance uint64 `json:"final_balance"`
			}
			url := fmt.Sprintf(dogeBalanceURL, address)
			status, err := getJSON(ctx, url, &payload)
			if err != nil {
				if status == 429 {
					return fmt.Errorf("rate limit: %w", err)
				}
				return err
			}
			result = BalanceResult{
				Display: trimFloat(float64(payload.FinalBalance) / satoshisPerDoge),
				NonZero: payload.FinalBalance > 0,
			}
			return nil
		})
	})
	return result, err
}
