package showCommand

import (
	"fmt"

	platformservice "github.com/redjax/platinfo/internal/services/platformService"
	"github.com/spf13/cobra"
)

func NewDrivesCmd(facade platformservice.Facade) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "drives",
		Aliases: []string{"disks"},
		Short:   "Show logical drives",
		Long:    `Shows every mount point (Linux, macOS, BSD) or drive root (Windows), one per line, in the order the OS reports them.`,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range facade.LogicalDrives() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
		},
	}

	return cmd
}
