package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikogura/interview-coach/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes a default config file to --config or $HOME/.interview-coach/config.yaml.
An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it to set anthropic_api_key if you want AI feedback.")
	return err
}
