package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abyssdigger/xlog"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show how closing a logger re-parents its children",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := newSystem(cmd)
		out := cmd.OutOrStdout()

		app := sys.NewLogger("app", xlog.FLAG_NONE)
		defer app.Close()
		db := xlog.NewChild("app.db", app, xlog.FLAG_INHERIT_ALL)
		pool := xlog.NewChild("app.db.pool", db, xlog.FLAG_INHERIT_ALL)
		defer pool.Close()
		conn := xlog.NewChild("app.db.pool.conn", pool, xlog.FLAG_INHERIT_PREFIXES)
		defer conn.Close()

		fmt.Fprintln(out, "before closing app.db:")
		printTree(out, sys)
		if err := db.Close(); err != nil {
			return err
		}
		fmt.Fprintln(out, "after closing app.db:")
		printTree(out, sys)
		return nil
	},
}

// printTree writes every root of sys followed by its descendants.
func printTree(out io.Writer, sys *xlog.System) {
	var walk func(l *xlog.Logger, depth int)
	walk = func(l *xlog.Logger, depth int) {
		fmt.Fprintf(out, "%s%s (flags %05b)\n", strings.Repeat("  ", depth), l.Name(), l.Flags())
		for _, c := range sys.Children(l) {
			walk(c, depth+1)
		}
	}
	for _, l := range sys.Loggers() {
		if l.Parent() == nil {
			walk(l, 1)
		}
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
