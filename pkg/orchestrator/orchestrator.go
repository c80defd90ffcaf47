package orchestrator

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/firstrun/pkg/errors"
	"github.com/arthur-debert/firstrun/pkg/gitignore"
	"github.com/arthur-debert/firstrun/pkg/installog"
	"github.com/arthur-debert/firstrun/pkg/logging"
	"github.com/arthur-debert/firstrun/pkg/registry"
	"github.com/arthur-debert/firstrun/pkg/style"
	"github.com/arthur-debert/firstrun/pkg/types"
)

// Options configures an Orchestrator. Registry, Store and ErrorLog are
// required; the rest default sensibly.
type Options struct {
	Registry registry.Registry
	Store    *installog.Store
	ErrorLog *installog.ErrorLog

	// Ignore registers the log paths for exclusion from version
	// control. Nil disables the step.
	Ignore *gitignore.Manager

	// IgnoreGroup tags the managed gitignore block
	IgnoreGroup string

	// Clock supplies record timestamps, defaults to wall-clock time
	Clock types.Clock

	// Out receives console output, defaults to os.Stdout
	Out io.Writer
}

// Orchestrator executes one installation or reporting pass
type Orchestrator struct {
	registry    registry.Registry
	store       *installog.Store
	errorLog    *installog.ErrorLog
	ignore      *gitignore.Manager
	ignoreGroup string
	clock       types.Clock
	out         io.Writer
	logger      zerolog.Logger
}

// New creates an Orchestrator from the given options
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		registry:    opts.Registry,
		store:       opts.Store,
		errorLog:    opts.ErrorLog,
		ignore:      opts.Ignore,
		ignoreGroup: opts.IgnoreGroup,
		clock:       opts.Clock,
		out:         opts.Out,
		logger:      logging.GetLogger("orchestrator"),
	}
	if o.clock == nil {
		o.clock = types.ClockFunc(time.Now)
	}
	if o.out == nil {
		o.out = os.Stdout
	}
	if o.ignoreGroup == "" {
		o.ignoreGroup = "install-logs"
	}
	return o
}

// CheckInstallation runs one pass. When required is false it prints the
// installed summary; when true it executes pending installers in
// priority order. Installer failures end up in the Report with
// ModeFatal; the returned error is reserved for infrastructure problems
// such as an unreadable log.
func (o *Orchestrator) CheckInstallation(required bool) (Report, error) {
	if !required {
		return o.report()
	}
	return o.install()
}

// report implements the no-installation-needed path: one summary line
// derived from the persisted log.
func (o *Orchestrator) report() (Report, error) {
	records, err := o.store.Read(false)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Mode: ModeReportOnly}
	for _, rec := range records {
		if !rec.Result {
			continue
		}
		rep.TotalInstalled++
		at := rec.InstalledTime()
		if at.IsZero() {
			continue
		}
		if rep.FirstInstalledAt.IsZero() || at.Before(rep.FirstInstalledAt) {
			rep.FirstInstalledAt = at
		}
	}

	if rep.TotalInstalled == 0 {
		fmt.Fprintln(o.out, "No installation needed; no packages installed yet.")
	} else {
		fmt.Fprintf(o.out, "No installation needed; %s package(s) installed, first on %s.\n",
			style.Render("Count", fmt.Sprintf("%d", rep.TotalInstalled)),
			style.Render("Timestamp", rep.FirstInstalledAt.Format(types.TimestampFormat)))
	}

	o.logger.Info().
		Int("installed", rep.TotalInstalled).
		Time("first", rep.FirstInstalledAt).
		Msg("Reported installation status")
	return rep, nil
}

// install walks all registered descriptors in priority order, running
// whatever is pending or previously failed.
func (o *Orchestrator) install() (Report, error) {
	rep := Report{Mode: ModeInstalled}

	fmt.Fprintln(o.out, style.Render("Header", "Installation run starting."))
	o.logger.Info().Int("registered", o.registry.Count()).Msg("Installation run starting")

	if err := o.store.Create(); err != nil {
		return Report{}, err
	}
	if o.ignore != nil {
		if err := o.ignore.Add(o.ignoreGroup, o.store.Path(), o.errorLog.Path()); err != nil {
			// Ignore-list maintenance must not block installation
			o.logger.Warn().Err(err).Msg("Could not update ignore file")
		}
	}

	records, err := o.store.Read(false)
	if err != nil {
		return Report{}, err
	}

	for _, desc := range o.registry.Ordered() {
		rec, seen := records[desc.Package]

		switch {
		case seen && rec.Result:
			o.logger.Debug().Str("package", desc.Package).Msg("Already installed, skipping")
			continue
		case seen:
			fmt.Fprintf(o.out, "Reinstalling %s...\n", style.Render("Package", desc.Name))
		default:
			fmt.Fprintf(o.out, "Installing %s...\n", style.Render("Package", desc.Name))
		}

		if fatalErr := o.installPackage(desc, &rep); fatalErr != nil {
			o.onInstallationError(desc.Package, fatalErr, &rep)
			return rep, nil
		}
	}

	fmt.Fprintf(o.out, "Installed %s package(s) this run.\n",
		style.Render("Count", fmt.Sprintf("%d", rep.Installed)))
	fmt.Fprintln(o.out, "Installation finished, exiting.")
	o.logger.Info().Int("installed", rep.Installed).Msg("Installation run finished")
	return rep, nil
}

// installPackage runs one installer and persists its outcome. The
// returned error is the fatal condition: either the installer failed
// outright or its test predicate rejected the result. A false outcome is
// persisted before it is reported fatal, so the next run retries it.
func (o *Orchestrator) installPackage(desc types.Descriptor, rep *Report) error {
	result, err := runInstaller(desc)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInstallerFailed, "installer for %q failed", desc.Package)
	}

	outcome := desc.Test(result)

	record := types.NewRecord(outcome, o.clock.Now())
	if werr := o.store.WriteMerge(desc.Package, record); werr != nil {
		return werr
	}

	if !outcome {
		return errors.Newf(errors.ErrInstallerFailed,
			"installer for %q produced unsuccessful result %v", desc.Package, result).
			WithDetail("result", result)
	}

	rep.Installed++
	fmt.Fprintf(o.out, "%s installed.\n", style.Render("Success", desc.Name))
	o.logger.Info().Str("package", desc.Package).Msg("Package installed")
	return nil
}

// runInstaller invokes the routine, converting a panic into an error so
// one misbehaving installer cannot take down bookkeeping.
func runInstaller(desc types.Descriptor) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("installer panicked: %v", r)
		}
	}()
	return desc.Install()
}

// onInstallationError records a fatal installer failure: appended to the
// error log, printed, and noted in the report. The run stops here.
func (o *Orchestrator) onInstallationError(packageID string, cause error, rep *Report) {
	rep.Mode = ModeFatal
	rep.FailedPackage = packageID
	rep.Err = cause

	if logErr := o.errorLog.Append(packageID, cause, o.clock.Now()); logErr != nil {
		o.logger.Error().Err(logErr).Msg("Could not append to error log")
	}

	fmt.Fprintln(o.out, style.Render("Error", "Installation error!"))
	fmt.Fprintf(o.out, "%v\n", cause)
	fmt.Fprintln(o.out, "Installation aborted, exiting.")
	o.logger.Error().Str("package", packageID).Err(cause).Msg("Installation failed")
}
