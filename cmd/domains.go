package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nikogura/interview-coach/pkg/domains"
)

//nolint:gochecknoglobals // Cobra boilerplate
var domainsWeakness string

// domainsReport is printed by the domains command.
type domainsReport struct {
	Mapping domains.Mapping       `json:"mapping"`
	Session domains.SessionConfig `json:"session"`
}

//nolint:gochecknoglobals // Cobra boilerplate
var domainsCmd = &cobra.Command{
	Use:   "domains <domain>...",
	Short: "Map selected domains to roles and question categories",
	Long: `Maps the domains a user selected to interview roles, question categories and skill focus,
and suggests a session configuration for an optional weakness.

Examples:
  interview-coach domains frontend backend
  interview-coach domains mobile "system design" --weakness communication`,
	RunE: runDomains,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.Flags().StringVar(&domainsWeakness, "weakness", "", "Weakest skill (technical, communication, confidence, clarity)")
}

func runDomains(cmd *cobra.Command, args []string) (err error) {
	report := domainsReport{
		Mapping: domains.MapDomainsToQuestions(args),
		Session: domains.RecommendSessionConfig(args, domainsWeakness),
	}

	err = printJSON(cmd.OutOrStdout(), report)
	return err
}
