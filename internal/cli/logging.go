package cli

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/spf13/cobra"
)

var (
	logDebug   bool
	logVerbose bool
	logLevel   = capnslog.WARNING

	plog = capnslog.NewPackageLogger("bundletest", "cli")
)

// AddLoggingFlags registers --log-level, --verbose and --debug on root and
// starts logging before any command runs.
func AddLoggingFlags(root *cobra.Command) {
	root.PersistentFlags().Var(&logLevel, "log-level",
		"Set global log level.")
	root.PersistentFlags().BoolVarP(&logVerbose, "verbose", "v", false,
		"Alias for --log-level=INFO")
	root.PersistentFlags().BoolVarP(&logDebug, "debug", "d", false,
		"Alias for --log-level=DEBUG")

	WrapPreRun(root, func(cmd *cobra.Command, args []string) error {
		startLogging(cmd)
		return nil
	})
}

func startLogging(cmd *cobra.Command) {
	switch {
	case logDebug:
		logLevel = capnslog.DEBUG
	case logVerbose:
		logLevel = capnslog.INFO
	}

	capnslog.SetFormatter(capnslog.NewStringFormatter(cmd.ErrOrStderr()))
	capnslog.SetGlobalLogLevel(logLevel)

	plog.Debugf("Started logging at level %s", logLevel)
}

// PreRunEFunc is the signature of a cobra PersistentPreRunE hook
type PreRunEFunc func(cmd *cobra.Command, args []string) error

// WrapPreRun runs f before any existing persistent pre-run of root
func WrapPreRun(root *cobra.Command, f PreRunEFunc) {
	preRun, preRunE := root.PersistentPreRun, root.PersistentPreRunE
	root.PersistentPreRun, root.PersistentPreRunE = nil, nil

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := f(cmd, args); err != nil {
			return err
		}
		if preRun != nil {
			preRun(cmd, args)
		} else if preRunE != nil {
			return preRunE(cmd, args)
		}
		return nil
	}
}
