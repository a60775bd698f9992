package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/abyssdigger/xlog"
	"github.com/abyssdigger/xlog/handlers"
)

var (
	noTypes  bool
	withZap  bool
	nManager int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the manager/initialization scenario",
	Long: `Creates a "manager" root logger writing to several files and a child
"manager.initialization" logger inheriting prefixes, files and handlers.
A prefix is added to the parent half-way, so the child's later lines show it.`,
	Example: `  # Write logs to ./logs (default)
  xlogdemo run

  # No [info]/[warn]/[critical] tags, mirror every line to zap
  xlogdemo run --no-types --zap -d /tmp/xlog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := newSystem(cmd)
		var zl *zap.Logger
		if withZap {
			var err error
			if zl, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("create zap logger: %w", err)
			}
			defer zl.Sync()
		}
		return runManager(sys, managerOptions{
			dir:     logDir,
			files:   nManager,
			noTypes: noTypes,
			zap:     zl,
		})
	},
}

type managerOptions struct {
	dir     string
	files   int         // number of manager-N.log files
	noTypes bool        // FLAG_DISABLE_TYPE_PREFIXES on both loggers
	zap     *zap.Logger // optional mirror handler
}

func runManager(sys *xlog.System, opt managerOptions) (err error) {
	var flags xlog.Flags
	if opt.noTypes {
		flags = xlog.FLAG_DISABLE_TYPE_PREFIXES
	}
	log := sys.NewLogger("manager", flags)
	defer func() { err = multierr.Append(err, log.Close()) }()

	log.AddHandler(handlers.NewAbortHandler(sys.Fallback()))
	if opt.zap != nil {
		log.AddHandler(handlers.NewZapHandler(opt.zap))
	}
	for i := range opt.files {
		if err := log.AddFile(filepath.Join(opt.dir, fmt.Sprintf("manager-%d.log", i))); err != nil {
			return err
		}
	}
	log.AddPrefix("[Manager]")
	log.Info("Starting initialization")

	ilog := xlog.NewChild("manager.initialization", log, xlog.FLAG_INHERIT_ALL|flags)
	defer func() { err = multierr.Append(err, ilog.Close()) }()
	if err := ilog.AddFile(filepath.Join(opt.dir, "manager.initialization.log")); err != nil {
		return err
	}
	ilog.AddPrefix("[Initialization]")
	ilog.Info("Environment initialized.")
	ilog.Info("Finished.")

	log.Warn("Transform to %s entity...", "EVIL")
	log.AddPrefix("[!EVIL!]")
	log.Info("I`m EVIL.")
	ilog.Info("I`m too.")
	ilog.Critical("EVIL EVERYONE")
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&noTypes, "no-types", false, "disable [info]/[warn]/[critical] tags")
	runCmd.Flags().BoolVar(&withZap, "zap", false, "mirror every line to a zap development logger")
	runCmd.Flags().IntVarP(&nManager, "files", "n", 5, "number of manager-N.log files")
}
