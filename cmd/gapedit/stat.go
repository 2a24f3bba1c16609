package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"example.com/gapedit/pkg/editor"
)

func newStatCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <file>...",
		Short: "Print gap buffer statistics for files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range args {
				d, err := editor.LoadFile(p, cfg.Buffer, nil)
				if err != nil {
					return err
				}
				b := d.Buf
				fmt.Fprintf(out, "%s\tlen=%d cap=%d gap=%d edit=%d lines=%d\n",
					p, b.Len(), b.Cap(), b.GapLen(), b.EditPos(), b.LineCount('\n'))
			}
			return nil
		},
	}
}
