package showCommand

import (
	"strings"

	"github.com/redjax/platinfo/internal/config"
	platformservice "github.com/redjax/platinfo/internal/services/platformService"

	"github.com/spf13/cobra"
)

func NewPlatformCmd(facade platformservice.Facade) *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show platform information. You can pass multiple --property <propertyname> flags.",
		Long: `Show detailed platform information.

Available properties for --property (case-insensitive):
  - ` + strings.Join(platformservice.PropertyNames(), "\n  - ") + `

Common aliases: hostname, arch, release, drives, pagesize.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := platformservice.ParseFormat(config.FromContext(cmd.Context()).Output.Format)
			if err != nil {
				return err
			}

			if len(properties) > 0 {
				return platformservice.RenderProperties(cmd.OutOrStdout(), platformservice.Capture(facade), properties, format)
			}

			return platformservice.Render(cmd.OutOrStdout(), platformservice.Capture(facade), format)
		},
	}

	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific properties (can be repeated)")

	return cmd
}
