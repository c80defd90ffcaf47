package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/firstrun/cmd/firstrun/commands/run"
	"github.com/arthur-debert/firstrun/cmd/firstrun/commands/status"
	"github.com/arthur-debert/firstrun/internal/version"
	"github.com/arthur-debert/firstrun/pkg/cobrax/topics"
	"github.com/arthur-debert/firstrun/pkg/logging"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd builds the firstrun command tree
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "firstrun",
		Short: MsgShort,
		Long:  MsgLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(run.NewCommand())
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		_ = topics.Initialize(rootCmd, sub, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("firstrun version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
