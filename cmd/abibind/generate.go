package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/branched-services/go-abibind/bindgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) generateCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a typed Go binding from an ABI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, path, err := a.readABI()
			if err != nil {
				return err
			}

			cfg := bindgen.Config{
				Package: a.v.GetString(pkgKey),
				Type:    a.v.GetString(typeKey),
				ABI:     raw,
				Source:  filepath.Base(path),
			}
			if cfg.Type == "" {
				return errors.New("no binding type given, use --type")
			}
			out := a.v.GetString(outKey)
			if cfg.Package == "" && out != "" {
				cfg.Package = packageFromDir(out)
			}

			code, err := bindgen.Generate(cfg)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return err
			}
			a.log.Info("generated binding",
				zap.String("type", cfg.Type),
				zap.String("package", cfg.Package),
				zap.String("out", out),
			)
			return nil
		},
	}

	flags := c.Flags()
	flags.String(pkgKey, "", "Package name of the generated file (default: name of the output directory)")
	flags.String(typeKey, "", "Exported Go type of the binding")
	flags.StringP(outKey, "o", "", "Output file (default: stdout)")
	return c
}

// packageFromDir guesses a package name from the directory of out.
func packageFromDir(out string) string {
	abs, err := filepath.Abs(out)
	if err != nil {
		return ""
	}
	return filepath.Base(filepath.Dir(abs))
}
