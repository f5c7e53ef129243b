package main

import (
	"fmt"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/app/provider"
	"bscscan_node/internal/app/service"
	"bscscan_node/internal/client"
	"bscscan_node/internal/infrastructure/configloader"
	"bscscan_node/internal/infrastructure/credentials"
	networkdefinition "bscscan_node/internal/infrastructure/network/definition"
	operationdefinition "bscscan_node/internal/infrastructure/operation/definition"
	"bscscan_node/internal/pkg/logger"
	"bscscan_node/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSecretStore is replaced in tests to keep the OS keyring out of them.
var newSecretStore = func() port.SecretStore { //nolint:gochecknoglobals // test seam
	return credentials.NewKeyringStore()
}

type rootOptions struct {
	configPath string
	logLevel   string
}

// app holds the wired dependencies shared by every command.
type app struct {
	cfg         *configloader.Config
	log         *zap.Logger
	appLogger   port.Logger
	registry    *operationdefinition.OperationRegistry
	networks    *networkdefinition.NetworkResolver
	executor    port.HTTPExecutor
	secrets     port.SecretStore
	credentials port.CredentialProvider
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bscscan",
		Short: "BscScan action node",
		Long: `bscscan runs BscScan explorer queries: balances, contract ABI and source,
contract creators and transaction receipt status, on BNB Smart Chain mainnet
and testnet. Use 'run' for a single query or 'serve' for the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", utils.GetEnv("CONFIG_PATH", configloader.DefaultPath), "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(
		newRunCommand(opts),
		newOperationsCommand(),
		newNetworksCommand(opts),
		newServeCommand(opts),
		newAuthCommand(opts),
	)
	return cmd
}

// bootstrap loads config, installs logging and builds the engine's collaborators.
func bootstrap(opts *rootOptions) (*app, error) {
	cfg, err := configloader.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, err
	}
	logger.InstallSlog(zapLogger, cfg.Logging.Level)
	appLogger := logger.NewSlogAdapter(nil)

	networks, err := networkdefinition.NewNetworkResolver(cfg.Explorer.Networks)
	if err != nil {
		return nil, fmt.Errorf("invalid network configuration: %w", err)
	}

	secrets := newSecretStore()

	return &app{
		cfg:       cfg,
		log:       zapLogger,
		appLogger: appLogger,
		registry:  operationdefinition.MustDefaultRegistry(),
		networks:  networks,
		executor:  client.NewExplorerClient(nil, zapLogger),
		secrets:   secrets,
		credentials: provider.NewCredentialProvider(
			cfg.Credentials.APIKey,
			secrets,
			cfg.Credentials.KeyringService,
			cfg.Credentials.KeyringUser,
			appLogger.With("component", "CredentialProvider"),
		),
	}, nil
}

func (a *app) actionService() port.ActionService {
	return service.NewActionService(a.registry, a.networks, a.executor, a.credentials, a.log)
}

func (a *app) close() {
	_ = a.log.Sync()
}
