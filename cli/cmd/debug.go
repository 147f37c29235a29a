/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"github.com/guojianwei001/h-store/xbase"

	"github.com/spf13/cobra"
)

// NewDebugCommand creates the debug command.
func NewDebugCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "show hstore config and plan",
	}
	addAdminFlag(cmd)
	cmd.AddCommand(newDebugGetCommand("configz", "show the server config", "/v1/debug/configz"))
	cmd.AddCommand(newDebugGetCommand("planz", "show the plan document with the active phase as initial", "/v1/debug/planz"))
	return cmd
}

func newDebugGetCommand(use string, short string, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			body, err := xbase.HTTPGet(adminURL(path))
			if err != nil {
				log.Panicf("hstorecli.debug.%s.error:%+v", use, err)
			}
			cmd.Println(body)
		},
	}
	return cmd
}
