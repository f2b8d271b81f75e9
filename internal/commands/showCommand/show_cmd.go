package showCommand

import (
	platformservice "github.com/redjax/platinfo/internal/services/platformService"

	"github.com/spf13/cobra"
)

func NewShowCmd(facade platformservice.Facade) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show host and runtime information, i.e. show platform.",
		Long: `Print host and runtime metadata.

Every value is read from the host at the moment the command runs.

Run platinfo show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewPlatformCmd(facade))
	showCmd.AddCommand(NewDrivesCmd(facade))
	showCmd.AddCommand(NewRuntimeCmd(facade))

	return showCmd
}
