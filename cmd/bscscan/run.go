package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bscscan_node/internal/domain/entity"
	"bscscan_node/internal/infrastructure/addressloader"
	"bscscan_node/internal/pkg/outfmt"
	"bscscan_node/internal/pkg/utils"

	"github.com/spf13/cobra"
)

type runOptions struct {
	operation   string
	network     string
	address     string
	addressFile string
	txHash      string
	apiKey      string
	query       string
	timeout     time.Duration
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one explorer operation",
		Long: `Execute one explorer operation and print the normalized records as JSON.

Examples:
  bscscan run --operation getBalanceSingle --address 0x515b72Ed8a97F42C568D6A143232775018f133C8
  bscscan run --operation getBalanceMulti --address-file wallets.txt --query '.[].balance'
  bscscan run --operation getTxReceiptStatus --network bsc-testnet --txhash 0xe997...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(root)
			if err != nil {
				return err
			}
			defer a.close()

			execCtx, err := opts.executionContext(a)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			envelope, err := a.actionService().Execute(ctx, execCtx)
			if err != nil {
				return err
			}
			return outfmt.Write(cmd.OutOrStdout(), envelope, opts.query)
		},
	}

	cmd.Flags().StringVar(&opts.operation, "operation", "", "Operation name (see 'bscscan operations')")
	cmd.Flags().StringVar(&opts.network, "network", "", "Network id; defaults to explorer.defaultNetwork")
	cmd.Flags().StringVar(&opts.address, "address", "", "Address, or comma-separated addresses for list operations")
	cmd.Flags().StringVar(&opts.addressFile, "address-file", "", "File with one address per line ('-' for stdin)")
	cmd.Flags().StringVar(&opts.txHash, "txhash", "", "Transaction hash")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Explorer API key; overrides config and keyring")
	cmd.Flags().StringVar(&opts.query, "query", "", "jq expression applied to the output")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the request after this duration (0 waits indefinitely)")
	cmd.MarkFlagsMutuallyExclusive("address", "address-file")

	return cmd
}

// executionContext assembles the engine input from flags and files.
func (o *runOptions) executionContext(a *app) (entity.ExecutionContext, error) {
	network := entity.NetworkID(o.network)
	if network == "" {
		network = a.cfg.Explorer.DefaultNetwork
	}

	fields := map[entity.FieldName]string{}
	if o.address != "" {
		fields[entity.FieldAddress] = o.address
	}
	if o.addressFile != "" {
		addresses, err := addressloader.NewAddressFileLoader(o.addressFile, a.appLogger).GetAddresses()
		if err != nil {
			return entity.ExecutionContext{}, err
		}
		if len(addresses) == 0 {
			return entity.ExecutionContext{}, entity.PreconditionError("address file %s contains no addresses", o.addressFile)
		}
		fields[entity.FieldAddress] = utils.JoinList(addresses)
	}
	if o.txHash != "" {
		fields[entity.FieldTxHash] = o.txHash
	}

	// An empty key is resolved from config or keyring by the engine, after validation.
	return entity.ExecutionContext{
		OperationID: o.operation,
		NetworkID:   network,
		APIKey:      o.apiKey,
		Fields:      fields,
	}, nil
}
