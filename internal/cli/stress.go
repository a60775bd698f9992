package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/abyssdigger/xlog"
)

var (
	nGoroutines int
	nMessages   int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Create/destroy child loggers while other goroutines emit",
	Long: `Half of the goroutines create and close one child logger each under a shared
root, the other half emit messages into the root's file through their own
inheriting children. At the end the registry size and the file are checked:
only the root may stay registered and every line must be complete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := newSystem(cmd)
		res, err := runStress(sys, filepath.Join(logDir, "stress.log"), nGoroutines, nMessages)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loggers left: %d, lines: %d, broken lines: %d\n",
			res.loggersLeft, res.lines, res.broken)
		if res.broken > 0 || res.loggersLeft != 1 || res.lines != res.expected {
			return fmt.Errorf("stress check failed: %+v", res)
		}
		return nil
	},
}

type stressResult struct {
	loggersLeft int // live loggers after the run (the root only)
	expected    int // lines the file has to contain
	lines       int
	broken      int // lines without the marker or not newline terminated
}

const stressMarker = "stress-msg"

func runStress(sys *xlog.System, path string, goroutines, messages int) (res stressResult, err error) {
	// log files are appended to, start from an empty one
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return res, err
	}
	root := sys.NewLogger("stress", xlog.FLAG_IGNORE_CONSOLE)
	if err = root.AddFile(path); err != nil {
		root.Close()
		return res, err
	}
	root.AddPrefix("[root]")

	var wg sync.WaitGroup
	hold := make(chan struct{})
	emitters := (goroutines + 1) / 2
	for i := range goroutines {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-hold
			child := xlog.NewChild(fmt.Sprintf("stress.%d", n), root, xlog.FLAG_INHERIT_ALL|xlog.FLAG_IGNORE_CONSOLE)
			defer child.Close()
			if n >= emitters {
				return // create/destroy only
			}
			child.AddPrefix(fmt.Sprintf("[%d]", n))
			for j := range messages {
				child.Info("%s %d/%d", stressMarker, n, j)
			}
		}(i)
	}
	close(hold)
	wg.Wait()

	res.loggersLeft = sys.Len()
	res.expected = emitters * messages
	if err = root.Close(); err != nil {
		return res, err
	}
	res.lines, res.broken, err = countLines(path)
	return res, err
}

// countLines counts the lines of path and the ones not matching the stress
// line layout.
func countLines(path string) (lines, broken int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	r := bufio.NewReader(f)
	for {
		line, rerr := r.ReadString('\n')
		if line != "" {
			lines++
			if !strings.HasSuffix(line, "\n") || !strings.Contains(line, "[root] ") || !strings.Contains(line, stressMarker) {
				broken++
			}
		}
		if rerr == io.EOF {
			return lines, broken, nil
		}
		if rerr != nil {
			return lines, broken, rerr
		}
	}
}

func init() {
	rootCmd.AddCommand(stressCmd)

	stressCmd.Flags().IntVarP(&nGoroutines, "goroutines", "g", 32, "number of goroutines")
	stressCmd.Flags().IntVarP(&nMessages, "messages", "m", 200, "messages per emitting goroutine")
}
