package run

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/firstrun/pkg/app"
	"github.com/arthur-debert/firstrun/pkg/config"
	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/logging"
)

// NewCommand creates the run command
func NewCommand() *cobra.Command {
	var require bool

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			a := app.New(cfg, filesystem.NewOS())
			if err := a.RegisterBuiltins(); err != nil {
				return err
			}
			if err := a.RegisterConfigured(); err != nil {
				return err
			}

			required := require || a.RequiredFromConfig()
			rep, err := a.CheckInstallation(required)
			if err != nil {
				return err
			}

			// An installer failure was already logged and printed;
			// the process still exits successfully so wrapping
			// scripts keep going. The failed package is retried on
			// the next run.
			logger := logging.GetLogger("cmd.run")
			logger.Debug().
				Stringer("mode", rep.Mode).
				Int("installed", rep.Installed).
				Msg("Run finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&require, "require", false, "Force an installation pass even when configuration says none is needed")

	return cmd
}
