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

// NewReconfigCommand creates the reconfig command.
func NewReconfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconfig",
		Short: "compute the ranges to move between two phases",
		Run:   reconfigCommand,
	}
	addAdminFlag(cmd)
	cmd.Flags().StringVar(&localFlags.from, "from", "", "--from=[phase], the active phase if empty")
	cmd.Flags().StringVar(&localFlags.to, "to", "", "--to=[phase]")
	return cmd
}

func reconfigCommand(cmd *cobra.Command, args []string) {
	type request struct {
		From string `json:"from,omitempty"`
		To   string `json:"to"`
	}

	req := &request{
		From: localFlags.from,
		To:   localFlags.to,
	}
	body, err := xbase.HTTPPost(adminURL("/v1/plan/reconfiguration"), req)
	if err != nil {
		log.Panicf("hstorecli.reconfig.from[%s].to[%s].error:%+v", req.From, req.To, err)
	}
	cmd.Println(body)
}
