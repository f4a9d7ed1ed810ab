package main

import (
	"errors"
	"fmt"

	abibind "github.com/branched-services/go-abibind"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) callCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "call <signature|name> [args...]",
		Short: "Call a function with eth_call and print the decoded outputs",
		Long: "Call a function with eth_call and print the decoded outputs. State-changing " +
			"functions are simulated; nothing is signed or sent.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rpc := a.v.GetString(rpcKey)
			if rpc == "" {
				return errors.New("no rpc endpoint given, use --rpc or ABIBIND_RPC")
			}
			table, err := a.table()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			exec, client, err := abibind.Dial(ctx, rpc, nil, nil)
			if err != nil {
				return err
			}
			defer client.Close()

			contract, err := abibind.Connect(table, a.v.GetString(addressKey), exec, abibind.WithLogger(a.log))
			if err != nil {
				return err
			}
			call, err := contract.Invoke(args[0], stringArgs(args[1:])...)
			if err != nil {
				return err
			}

			a.log.Debug("eth_call",
				zap.String("rpc", rpc),
				zap.Stringer("to", contract.Address()),
				zap.String("method", call.Function().Signature()),
			)
			out, err := call.Static().Read(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", call.Function().Signature(), err)
			}
			return printValues(cmd.OutOrStdout(), call.Function().Outputs, out)
		},
	}

	flags := c.Flags()
	flags.String(rpcKey, "", "JSON-RPC endpoint")
	flags.String(addressKey, "", "Contract address")
	flags.SetInterspersed(false)
	return c
}
