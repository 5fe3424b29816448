/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for dsexport.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dsexport/cmd/export"
	"bennypowers.dev/dsexport/cmd/render"
	"bennypowers.dev/dsexport/cmd/settings"
	"bennypowers.dev/dsexport/cmd/structure"
	"bennypowers.dev/dsexport/cmd/version"
	"bennypowers.dev/dsexport/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "dsexport",
	Short: "Export design system tokens as structured JSON",
	Long: `dsexport fetches the tokens of a design system version and regroups them
by root token group, ready for documentation tooling.

Settings are read from .config/dsexport.{yaml,yml,json} under --root, from
DSEXPORT_* environment variables, and from flags, in increasing priority.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString(settings.KeyLogLevel))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	settings.RegisterFlags(rootCmd.PersistentFlags())
	cobra.CheckErr(settings.Bind(viper.GetViper(), rootCmd.PersistentFlags()))

	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(structure.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
