// Command insteon sends Insteon commands through a hub. It runs as the
// host's modular alert action (alert --execute) and custom search command
// (search), and offers a few direct subcommands for setup and testing.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LukeMurphey/splunk-insteon-alert/pkg/db"
	"github.com/LukeMurphey/splunk-insteon-alert/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes reported to the host.
const (
	exitOK          = 0
	exitUsage       = 1
	exitCallFailed  = 2
	exitInvalidConf = 3
)

// exitError carries a process exit code out of a command. Messages have
// already been written when it is returned.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitWith(code int) error {
	if code == exitOK {
		return nil
	}
	return &exitError{code: code}
}

var (
	v         = viper.New()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "insteon",
	Short:         "Send commands to Insteon devices through an Insteon Hub",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		file := v.GetString("log-file")
		if file == "" && hostInvoked(cmd) {
			file = logging.DefaultFile()
		}
		logCloser = logging.Setup(logging.Options{File: file, Verbose: v.GetBool("verbose")})
	},
}

func init() {
	v.SetEnvPrefix("INSTEON")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to the settings database")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	_ = v.BindPFlag("db", flags.Lookup("db"))
	_ = v.BindPFlag("log-file", flags.Lookup("log-file"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	rootCmd.AddCommand(alertCmd, searchCmd, sendCmd, commandsCmd, hubCmd, apiCmd, profileCmd, statusCmd)
}

// hostInvoked reports whether cmd is run by the host rather than a person,
// in which case logs go to the host's log directory.
func hostInvoked(cmd *cobra.Command) bool {
	return cmd == alertCmd || cmd == searchCmd
}

func openDB(ctx context.Context) (*db.DB, error) {
	return db.OpenReady(ctx, v.GetString("db"))
}

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitUsage)
}
