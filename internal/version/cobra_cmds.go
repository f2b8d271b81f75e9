package version

import (
	"fmt"

	platformservice "github.com/redjax/platinfo/internal/services/platformService"

	"github.com/spf13/cobra"
)

// NewSelfCommand creates the 'self' parent command, which adds some of the other
// commands in this file as subcommands.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewSelfCommand(facade))
func NewSelfCommand(facade platformservice.Facade) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Information about this platinfo binary",
	}

	// Attach 'info' as a subcommand
	cmd.AddCommand(NewPackageInfoCommand())
	// Attach 'version' as a subcommand
	cmd.AddCommand(NewVersionCommand(facade))

	return cmd
}

// NewVersionCommand adds a 'version' subcommand, which prints the package's
// version and the runtime it was built with.
func NewVersionCommand(facade platformservice.Facade) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			pkgInfo := GetPackageInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "package: %s version:%s commit:%s date:%s runtime:%s/%s\n",
				pkgInfo.PackageName,
				pkgInfo.PackageVersion,
				pkgInfo.PackageCommit,
				pkgInfo.PackageReleaseDate,
				facade.RuntimeVersion(),
				facade.ProcessArchitecture(),
			)
		},
	}
}

// NewPackageInfoCommand adds a subcommand 'info' and prints info about the package.
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}
