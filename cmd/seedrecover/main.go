package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seedrecover/core"
	"seedrecover/pkg/config"
)

var (
	initOnce sync.Once
	logger   = logrus.New()
)

// initMiddleware loads a .env file (if present) and configures the shared
// logger once per process, the same pattern the wallet CLI's middleware
// uses before any command runs.
func initMiddleware() {
	initOnce.Do(func() {
		_ = godotenv.Load()
		if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			logger.SetLevel(lvl)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
}

type runFlags struct {
	network         string
	length          int
	known           []string
	missingPos      []int
	missingCount    int
	target          string
	checkBalance    bool
	path            string
	tryAlternatives bool
	rps             float64
	maxConcurrent   int
	configPath      string
}

func main() {
	initMiddleware()

	flags := &runFlags{}

	root := &cobra.Command{
		Use:   "seedrecover",
		Short: "Recover a partially known BIP-39 mnemonic by checksum-guided brute force",
	}

	var knownRaw []string
	var missingPosRaw string

	run := &cobra.Command{
		Use:   "run",
		Short: "Search for a completion of a partial mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			known, err := parseKnownWords(knownRaw)
			if err != nil {
				return err
			}
			flags.known = knownRaw

			missing, err := resolveMissingPositions(missingPosRaw, flags.missingCount, flags.length, known)
			if err != nil {
				return err
			}

			return runRecovery(cmd.Context(), flags, known, missing)
		},
	}

	run.Flags().StringVar(&flags.network, "network", "", "target network: evm, tron, solana, doge, pi")
	run.Flags().IntVar(&flags.length, "length", 12, "mnemonic length: 12, 15, 18, 21 or 24")
	run.Flags().StringArrayVar(&knownRaw, "known", nil, "known word as pos:word, e.g. 1:abandon (repeatable)")
	run.Flags().StringVar(&missingPosRaw, "missing-positions", "", "comma-separated 1-based missing word positions")
	run.Flags().IntVar(&flags.missingCount, "missing-count", 0, "number of missing words to search over all position combinations (ignored if --missing-positions is set)")
	run.Flags().StringVar(&flags.target, "target", "", "target address to match against")
	run.Flags().BoolVar(&flags.checkBalance, "check-balance", false, "query each candidate address's on-chain balance")
	run.Flags().StringVar(&flags.path, "path", "", "override derivation path (disables alternative-path fallback)")
	run.Flags().BoolVar(&flags.tryAlternatives, "try-alternatives", true, "try the network's alternative derivation paths if the default path finds nothing")
	run.Flags().Float64Var(&flags.rps, "rps", 0, "override the network's default requests per second (0 = network default)")
	run.Flags().IntVar(&flags.maxConcurrent, "max-concurrent", 0, "override max concurrent balance/address requests (0 = derived from rps)")
	run.Flags().StringVar(&flags.configPath, "config", "", "directory containing seedrecover.yaml")

	root.AddCommand(run)

	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("seedrecover failed")
		os.Exit(1)
	}
}

// parseKnownWords parses "pos:word" flag values into TestWordInfo entries.
func parseKnownWords(raw []string) ([]core.TestWordInfo, error) {
	out := make([]core.TestWordInfo, 0, len(raw))
	for _, r := range raw {
		parts := strings.SplitN(r, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --known value %q, expected pos:word", r)
		}
		pos, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid --known position %q: %w", parts[0], err)
		}
		out = append(out, core.TestWordInfo{Pos: pos, Word: parts[1]})
	}
	return out, nil
}

// resolveMissingPositions returns either the explicit position list or
// every combination of missingCount positions drawn from the slots not
// already filled by known words.
func resolveMissingPositions(raw string, missingCount, length int, known []core.TestWordInfo) ([][]int, error) {
	if raw != "" {
		parts := strings.Split(raw, ",")
		positions := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid --missing-positions value %q: %w", p, err)
			}
			positions = append(positions, n)
		}
		sort.Ints(positions)
		return [][]int{positions}, nil
	}

	if missingCount <= 0 {
		return nil, fmt.Errorf("either --missing-positions or --missing-count must be set")
	}

	knownSet := make(map[int]bool, len(known))
	for _, kw := range known {
		knownSet[kw.Pos] = true
	}
	var free []int
	for p := 1; p <= length; p++ {
		if !knownSet[p] {
			free = append(free, p)
		}
	}

	var combos [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == missingCount {
			combos = append(combos, append([]int(nil), chosen...))
			return
		}
		for i := start; i < len(free); i++ {
			pick(i+1, append(chosen, free[i]))
		}
	}
	pick(0, nil)
	return combos, nil
}

func runRecovery(ctx context.Context, flags *runFlags, known []core.TestWordInfo, positionSets [][]int) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		logger.WithError(err).Warn("falling back to built-in network defaults")
		fallback := config.LoadFromEnv()
		cfg = &fallback
	}

	netCfg := core.NetworkConfig{
		EVMRPCURL:     cfg.Endpoints.EVMRPCURL,
		TronRPCURL:    cfg.Endpoints.TronRPCURL,
		SolanaRPCURL:  cfg.Endpoints.SolanaRPCURL,
		EVMRPS:        cfg.Limits.EVMRPS,
		TronRPS:       cfg.Limits.TronRPS,
		SolanaRPS:     cfg.Limits.SolanaRPS,
		MaxConcurrent: flags.maxConcurrent,
	}
	// --rps is a single override shared by EVM, Solana, and Tron, the only
	// three networks spec'd as user-tunable; it takes precedence over
	// whatever the config file set for each.
	if flags.rps > 0 {
		netCfg.EVMRPS = flags.rps
		netCfg.TronRPS = flags.rps
		netCfg.SolanaRPS = flags.rps
	}
	networks := core.BuildNetworks(netCfg)
	network, err := core.LookupNetwork(networks, flags.network)
	if err != nil {
		return err
	}

	recCfg := core.RecoveryConfig{
		Network:         flags.network,
		Length:          flags.length,
		KnownWords:      known,
		TargetAddress:   flags.target,
		CheckBalance:    flags.checkBalance,
		Path:            flags.path,
		TryAlternatives: flags.tryAlternatives,
	}
	if len(positionSets) > 0 {
		recCfg.MissingPositions = positionSets[0]
	}
	if err := recCfg.Validate(); err != nil {
		return err
	}

	progressEvery := uint64(1000)
	if flags.checkBalance {
		progressEvery = 1
	}

	orch := &core.Orchestrator{
		Network:      network,
		PositionSets: positionSets,
		Base:         recCfg,
		OnProgress: func(n uint64) {
			if n%progressEvery == 0 {
				fmt.Fprintf(os.Stderr, "\rchecked %d candidates", n)
			}
		},
	}

	result, err := orch.Run(ctx, func(funded core.RecoveryResult) {
		fmt.Printf("\nFOUND WALLET WITH BALANCE\n  mnemonic: %s\n  address:  %s\n  path:     %s\n  balance:  %s\n",
			funded.Mnemonic, funded.Address, funded.Path, funded.Balance.Display)
	})
	fmt.Fprintln(os.Stderr)

	if err != nil {
		if err == core.ErrNotFound {
			fmt.Println("no matching mnemonic found")
			os.Exit(0)
		}
		return err
	}

	fmt.Printf("MATCH FOUND\n  mnemonic: %s\n  address:  %s\n  path:     %s\n", result.Mnemonic, result.Address, result.Path)
	return nil
}
