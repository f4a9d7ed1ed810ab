package main

import (
	"fmt"
	"io"
	"reflect"

	abibind "github.com/branched-services/go-abibind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func (a *app) encodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "encode <signature|name> [args...]",
		Short: "Encode calldata for a function",
		Long: "Encode calldata for a function. Arguments are given as strings: decimal or 0x " +
			"integers, hex addresses and bytes, true/false, and JSON arrays for list types.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table()
			if err != nil {
				return err
			}
			dec, err := abibind.NewInterfaceDecoder(table)
			if err != nil {
				return err
			}
			data, err := dec.EncodeCall(args[0], stringArgs(args[1:])...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(data))
			return err
		},
	}
	// Arguments after the signature are values, so "-3" is not a flag.
	c.Flags().SetInterspersed(false)
	return c
}

func (a *app) decodeCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode calldata, or revert data with --revert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table()
			if err != nil {
				return err
			}
			dec, err := abibind.NewInterfaceDecoder(table)
			if err != nil {
				return err
			}
			data, err := hexutil.Decode(args[0])
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}

			out := cmd.OutOrStdout()
			if a.v.GetBool(revertKey) {
				_, err = fmt.Fprintln(out, dec.DecodeRevert(data).Error())
				return err
			}

			call, err := dec.DecodeCall(data)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, call.Function.Signature()); err != nil {
				return err
			}
			return printValues(out, call.Function.Inputs, call.Args)
		},
	}
	c.Flags().Bool(revertKey, false, "Decode revert data instead of calldata")
	return c
}

func stringArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// printValues writes one "name: value" line per value.
func printValues(w io.Writer, params []abibind.Param, values []any) error {
	for i, v := range values {
		name := fmt.Sprintf("[%d]", i)
		if i < len(params) && params[i].Name != "" {
			name = params[i].Name
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, formatValue(v)); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders byte values as hex and everything else with %v.
func formatValue(v any) string {
	switch v := v.(type) {
	case common.Address:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		for i := range b {
			b[i] = byte(rv.Index(i).Uint())
		}
		return hexutil.Encode(b)
	}
	return fmt.Sprint(v)
}
