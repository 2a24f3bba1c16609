package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"example.com/gapedit/internal/app"
	"example.com/gapedit/pkg/config"
	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/logs"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:          "gapedit [file...]",
		Short:        "A terminal text editor built on a gap buffer",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger := logs.NewFromEnv()
			defer logger.Close()

			ed := editor.New(cfg, logger)
			if err := openAll(ed, args); err != nil {
				return err
			}
			return app.New(ed).Run()
		},
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.gapedit/config.yaml)")
	cmd.AddCommand(newStatCmd(&cfgPath))
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// openAll loads each path into ed. A path that does not exist yet becomes
// an empty document that will be written there on save.
func openAll(ed *editor.Editor, paths []string) error {
	for _, p := range paths {
		_, err := ed.Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			d, err := ed.NewDocument()
			if err != nil {
				return err
			}
			d.Path = p
			continue
		}
		if err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
	}
	if len(ed.Docs) > 1 {
		ed.Current = 0
	}
	return nil
}
