package main

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexaspect/catalog"
)

// rootOptions holds the persistent flags and the state derived from them.
type rootOptions struct {
	logLevel    string
	catalogPath string

	log *logrus.Entry
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "hexaspect",
		Short:        "Connect aspect seeds on a hex grid with the cheapest compatible chain",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setupLogger(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	cmd.PersistentFlags().StringVar(&o.catalogPath, "catalog", "", "catalog YAML file (default: built-in aspect table)")

	cmd.AddCommand(newSolveCmd(o), newCatalogCmd(o), newGridCmd())
	return cmd
}

// setupLogger writes text logs to the command's error stream. Every entry of
// one invocation carries the same run_id.
func (o *rootOptions) setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	o.log = logger.WithField("run_id", uuid.NewString())
	return nil
}

// loadCatalog returns the --catalog file, or the built-in table.
func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(o.catalogPath)
}
