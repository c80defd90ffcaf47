package status

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/firstrun/pkg/app"
	"github.com/arthur-debert/firstrun/pkg/config"
	"github.com/arthur-debert/firstrun/pkg/filesystem"
	"github.com/arthur-debert/firstrun/pkg/style"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// entry is one row of status output
type entry struct {
	Package     string `json:"package" yaml:"package"`
	Installed   bool   `json:"installed" yaml:"installed"`
	InstalledAt string `json:"installed_at" yaml:"installed_at"`
}

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
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
			records, err := a.Store().Read(false)
			if err != nil {
				return err
			}

			entries := toEntries(records)

			switch format {
			case "json":
				return printJSON(cmd, entries)
			case "yaml":
				return printYAML(cmd, entries)
			case "text":
				printText(cmd, entries)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, yaml or json")

	return cmd
}

func toEntries(records map[string]types.Record) []entry {
	entries := make([]entry, 0, len(records))
	for id, rec := range records {
		entries = append(entries, entry{
			Package:     id,
			Installed:   rec.Result,
			InstalledAt: rec.InstalledAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Package < entries[j].Package
	})
	return entries
}

func printText(cmd *cobra.Command, entries []entry) {
	if len(entries) == 0 {
		cmd.Println("No packages installed yet.")
		return
	}

	for _, e := range entries {
		marker := style.Render("Success", "installed")
		if !e.Installed {
			marker = style.Render("Warning", "pending retry")
		}
		cmd.Printf("%s  %s  %s\n", style.Render("Package", e.Package), marker, e.InstalledAt)
	}
}

func printJSON(cmd *cobra.Command, entries []entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

func printYAML(cmd *cobra.Command, entries []entry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}
