package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aab2apk/aab2apk/properties"
	"github.com/spf13/cobra"
)

func newSigning() *cobra.Command {
	var signing string

	cmd := &cobra.Command{
		Use:   "signing",
		Short: "Inspect and edit a signing properties file",
	}

	cmd.PersistentFlags().StringVar(&signing, "signing", "signing.properties", "Path to the signing properties file.")

	cmd.AddCommand(newSigningGet(&signing), newSigningSet(&signing), newSigningRm(&signing))

	return cmd
}

func newSigningGet(signing *string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := properties.Open(*signing)
			if err != nil {
				return err
			}

			value, ok := file.Get(args[0])
			if !ok {
				return fmt.Errorf("property not found: %s", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}
}

func newSigningSet(signing *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "set <key=value[#comment]>...",
		Short: "Set properties, preserving comments and ordering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := properties.Open(*signing)
			if err != nil {
				return err
			}

			for _, arg := range args {
				key, rest, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid set format: %s (expected key=value)", arg)
				}

				value, comment, _ := strings.Cut(rest, "#")
				file.Set(strings.TrimSpace(key), strings.TrimSpace(value), strings.TrimSpace(comment))
			}

			if output == "" {
				output = *signing
			}

			return writeProperties(file, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Path to write to instead of rewriting the input.")

	return cmd
}

func newSigningRm(signing *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rm <key>...",
		Short: "Remove properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := properties.Open(*signing)
			if err != nil {
				return err
			}

			for _, key := range args {
				file.Remove(key)
			}

			if output == "" {
				output = *signing
			}

			return writeProperties(file, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Path to write to instead of rewriting the input.")

	return cmd
}

// writeProperties writes file to name through a temporary sibling so
// that a failed write never truncates the original. The original's
// file mode carries over to the rewrite.
func writeProperties(file *properties.File, name string) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".*")
	if err != nil {
		return err
	}

	if info, serr := os.Stat(name); serr == nil {
		if err = tmp.Chmod(info.Mode().Perm()); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			return err
		}
	}

	if _, err = file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), name)
}
