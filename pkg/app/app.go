// Package app wires firstrun's pieces into the two caller-visible entry
// points: RegisterInstaller and CheckInstallation. Library users build an
// App, register their installers, and hand the required signal to
// CheckInstallation; the CLI does the same with config-declared shell
// installers.
package app

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/firstrun/pkg/config"
	"github.com/arthur-debert/firstrun/pkg/gitignore"
	"github.com/arthur-debert/firstrun/pkg/installog"
	"github.com/arthur-debert/firstrun/pkg/logging"
	"github.com/arthur-debert/firstrun/pkg/orchestrator"
	"github.com/arthur-debert/firstrun/pkg/paths"
	"github.com/arthur-debert/firstrun/pkg/registry"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// App holds one process's registry and collaborators
type App struct {
	Registry registry.Registry

	cfg  *config.Config
	fs   types.FS
	path paths.Paths
}

// New creates an App over the given filesystem and configuration
func New(cfg *config.Config, fs types.FS) *App {
	return &App{
		Registry: registry.New(),
		cfg:      cfg,
		fs:       fs,
		path:     paths.New(cfg.StateDir()),
	}
}

// RegisterInstaller validates and registers one installer descriptor
func (a *App) RegisterInstaller(packageID string, input types.DescriptorInput) error {
	return a.Registry.Register(packageID, input)
}

// Built-in installer packages carried by every binary run
const (
	BuiltinStateDir     = "state-dir"
	BuiltinShellSnippet = "shell-snippet"
)

// SnippetFileName is the shell snippet written into the state directory
const SnippetFileName = "snippet.sh"

// RegisterBuiltins registers the installers the binary itself carries:
// state directory scaffolding and a sourceable shell snippet. Their
// priorities put them ahead of configured installers, so the state
// directory exists before anything else runs.
func (a *App) RegisterBuiltins() error {
	stateDir := a.path.StateDir()

	scaffoldPriority := 100
	if err := a.Registry.Register(BuiltinStateDir, types.DescriptorInput{
		Name:     "state directory",
		Priority: &scaffoldPriority,
		Install: func() (interface{}, error) {
			if err := a.fs.MkdirAll(stateDir, 0755); err != nil {
				return nil, err
			}
			return stateDir, nil
		},
	}); err != nil {
		return err
	}

	snippetPath := filepath.Join(stateDir, SnippetFileName)
	snippetPriority := 90
	return a.Registry.Register(BuiltinShellSnippet, types.DescriptorInput{
		Name:     "shell snippet",
		Priority: &snippetPriority,
		Install: func() (interface{}, error) {
			snippet := fmt.Sprintf("# Generated by firstrun. Source this from your shell profile.\nexport %s=%q\n",
				paths.EnvStateDir, stateDir)
			if err := a.fs.WriteFile(snippetPath, []byte(snippet), 0644); err != nil {
				return nil, err
			}
			return snippetPath, nil
		},
	})
}

// RegisterConfigured registers the shell installers declared in the
// configuration file
func (a *App) RegisterConfigured() error {
	specs, err := a.cfg.Installers()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("app")
	for id, spec := range specs {
		priority := spec.Priority
		if err := a.Registry.Register(id, types.DescriptorInput{
			Priority: &priority,
			Install:  shellInstaller(spec.Command),
		}); err != nil {
			return err
		}
		logger.Debug().Str("package", id).Int("priority", priority).Msg("Registered configured installer")
	}
	return nil
}

// CheckInstallation runs one orchestration pass. The required signal
// normally comes from configuration (install.required or
// FIRSTRUN_INSTALL_REQUIRED) via RequiredFromConfig.
func (a *App) CheckInstallation(required bool) (orchestrator.Report, error) {
	o := orchestrator.New(orchestrator.Options{
		Registry:    a.Registry,
		Store:       installog.New(a.fs, a.path.InstalledLogPath()),
		ErrorLog:    installog.NewErrorLog(a.fs, a.path.ErrorLogPath()),
		Ignore:      gitignore.NewManager(a.fs, a.cfg.GitignorePath()),
		IgnoreGroup: a.cfg.GitignoreGroup(),
	})
	return o.CheckInstallation(required)
}

// RequiredFromConfig resolves the externally supplied "installation
// required" signal
func (a *App) RequiredFromConfig() bool {
	return a.cfg.InstallRequired()
}

// InstalledLogPath exposes the resolved installed-log location
func (a *App) InstalledLogPath() string {
	return a.path.InstalledLogPath()
}

// Store returns a read handle on the persisted installation log
func (a *App) Store() *installog.Store {
	return installog.New(a.fs, a.path.InstalledLogPath())
}

// shellInstaller adapts a shell command into an installer routine. The
// routine fails when the command exits nonzero; on success the result is
// simply true, leaving success judgment to the default predicate.
func shellInstaller(command string) types.InstallerFunc {
	return func() (interface{}, error) {
		cmd := exec.Command("sh", "-c", command)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return nil, &CommandError{Command: command, Output: string(output), Err: err}
		}
		return true, nil
	}
}
