package showCommand

import (
	"fmt"

	platformservice "github.com/redjax/platinfo/internal/services/platformService"
	"github.com/spf13/cobra"
)

func NewRuntimeCmd(facade platformservice.Facade) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runtime",
		Short: "Show runtime info",
		Long:  `Show the Go runtime this binary was built with and the architecture it targets.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Runtime:      %s\n", facade.RuntimeDescription())
			fmt.Fprintf(out, "Version:      %s\n", facade.RuntimeVersion())
			fmt.Fprintf(out, "Process Arch: %s\n", facade.ProcessArchitecture())
			fmt.Fprintf(out, "OS Arch:      %s\n", facade.OSArchitecture())
		},
	}

	return cmd
}
