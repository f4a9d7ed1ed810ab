package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	abibind "github.com/branched-services/go-abibind"
	"github.com/branched-services/go-abibind/bindgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "ABIBIND"

	configKey  = "config"
	verboseKey = "verbose"
	abiKey     = "abi"
	pkgKey     = "pkg"
	typeKey    = "type"
	outKey     = "out"
	revertKey  = "revert"
	rpcKey     = "rpc"
	addressKey = "address"
)

var errMissingABI = errors.New("no abi given, use --abi or ABIBIND_ABI")

// app carries state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "abibind",
		Short:         "Typed Ethereum contract bindings from ABI descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String(configKey, "", "YAML config file")
	flags.BoolP(verboseKey, "v", false, "Log debug output to stderr")
	flags.String(abiKey, "", "ABI file: a bare ABI array or a compiler artifact")

	root.AddCommand(
		a.generateCommand(),
		a.encodeCommand(),
		a.decodeCommand(),
		a.callCommand(),
	)
	return root
}

// init binds flags, environment and config file, then builds the logger.
// Precedence is flag, then environment, then config file, then default.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString(configKey); path != "" {
		a.v.SetConfigFile(os.ExpandEnv(path))
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	log, err := newLogger(a.v.GetBool(verboseKey))
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// readABI loads the ABI named by --abi.
func (a *app) readABI() ([]byte, string, error) {
	path := a.v.GetString(abiKey)
	if path == "" {
		return nil, "", errMissingABI
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	raw, err := bindgen.LoadABI(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("loaded abi", zap.String("path", path), zap.Int("bytes", len(raw)))
	return raw, path, nil
}

// table parses the ABI named by --abi.
func (a *app) table() (*abibind.Table, error) {
	raw, path, err := a.readABI()
	if err != nil {
		return nil, err
	}
	t, err := abibind.ParseTable(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
