package command

import (
	"runtime"

	"github.com/aab2apk/aab2apk"
	"github.com/spf13/cobra"
)

// NewAab2APK returns the root command for
// aab2apk which acts as its CLI entrypoint.
func NewAab2APK() *cobra.Command {
	var (
		verbosity  int
		conversion = &aab2apk.Conversion{}
		cmd        = &cobra.Command{
			Use:           "aab2apk",
			Short:         "Convert an Android App Bundle to a signed universal APK",
			Version:       aab2apk.SemVer(),
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRun: func(cmd *cobra.Command, _ []string) {
				cmd.SetContext(
					aab2apk.WithLogger(
						cmd.Context(), aab2apk.NewLogger(verbosity),
					),
				)
			},
			RunE: func(cmd *cobra.Command, _ []string) error {
				return aab2apk.Convert(cmd.Context(), conversion)
			},
		}
	)

	cmd.SetVersionTemplate("{{ .Name }}{{ .Version }} " + runtime.Version() + "\n")
	cmd.Flags().StringVar(&conversion.AAB, "aab", "app.aab", "Path to the input AAB file.")
	cmd.Flags().StringVar(&conversion.Output, "output", "app-universal.apk", "Path to write the universal APK to.")
	cmd.Flags().StringVar(&conversion.Bundletool, "bundletool", "bundletool-all-1.18.1.jar", "Path to the bundletool JAR.")
	cmd.Flags().StringVar(&conversion.SigningProperties, "signing", "signing.properties", "Path to the signing properties file.")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Verbosity for aab2apk.")

	cmd.AddCommand(newSigning())

	return cmd
}
