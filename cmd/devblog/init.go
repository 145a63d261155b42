package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navidjalilian/devblog/scaffold"
)

var initURL string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter devblog.yaml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := "devblog.yaml"
		if cfgFile != "" {
			p = cfgFile
		}
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		}
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := scaffold.Config(f, scaffold.ConfigData{URL: initURL}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initURL, "url", "https://navidjalilian.com", "canonical site URL")
}
