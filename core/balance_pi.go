package core

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// piHorizonServer is Pi Network's mainnet Horizon (Stellar-compatible)
// endpoint.
const piHorizonServer = "https://api.mainnet.minepi.com"

// CheckPiBalance queries Horizon's account endpoint for address's native
// balance. A 404 means the account has never been funded, which is a
// legitimate zero-balance result rather than a transport failure.
func CheckPiBalance(ctx context.Context, limiter *RateLimiter, address string) (BalanceResult, error) {
	var result BalanceResult
	err := limiter.Execute(ctx, func(ctx context.Context) error {
		return RetryWithBackoff(ctx, 3, 1*time.Second, func(ctx context.Context) error {
			var payload struct {
				Balances []struct {
					AssetType string `json:"asset_type"`
					Balance   string `json:"balance"`
				} `json:"balances"`
			}
			url := fmt.Sprintf("%s/accounts/%s", piHorizonServer, address)
			status, err := getJSON(ctx, url, &payload)
			if status == http.StatusNotFound {
				result = BalanceResult{Display: "0", NonZero: false}
				return nil
			}
			if err != nil {
				return err
			}
			for _, b := range payload.Balances {
				if b.AssetType == "native" {
					result = BalanceResult{Display: b.Balance, NonZero: b.Balance != "0" && b.Balance != "0.0000000"}
					return nil
				}
			}
			result = BalanceResult{Display: "0", NonZero: false}
			return nil
		})
	})
	return result, err
}
