/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"fmt"

	"github.com/guojianwei001/h-store/xbase"

	"github.com/spf13/cobra"
)

// NewPhaseCommand creates the phase command.
func NewPhaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "show/set the active partition phase",
	}
	addAdminFlag(cmd)
	cmd.AddCommand(NewPhaseShowCommand())
	cmd.AddCommand(NewPhaseSetCommand())
	cmd.AddCommand(NewPhaseRangesCommand())
	return cmd
}

// NewPhaseShowCommand shows the phases.
func NewPhaseShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the phases and the active one",
		Run:   phaseShowCommand,
	}
	return cmd
}

func phaseShowCommand(cmd *cobra.Command, args []string) {
	body, err := xbase.HTTPGet(adminURL("/v1/plan/phases"))
	if err != nil {
		log.Panicf("hstorecli.phase.show.error:%+v", err)
	}
	cmd.Println(body)
}

// NewPhaseSetCommand switches the active phase.
func NewPhaseSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <phase>",
		Short: "switch the active phase",
		Args:  cobra.ExactArgs(1),
		Run:   phaseSetCommand,
	}
	return cmd
}

func phaseSetCommand(cmd *cobra.Command, args []string) {
	type request struct {
		Phase string `json:"phase"`
	}

	req := &request{
		Phase: args[0],
	}
	if _, err := xbase.HTTPPut(adminURL("/v1/plan/phase"), req); err != nil {
		log.Panicf("hstorecli.phase.set.to[%s].error:%+v", args[0], err)
	}
	cmd.Printf("active phase: %s\n", args[0])
}

// NewPhaseRangesCommand shows the ranges of a table.
func NewPhaseRangesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranges <phase> <table>",
		Short: "show the ranges of the table in the phase",
		Args:  cobra.ExactArgs(2),
		Run:   phaseRangesCommand,
	}
	return cmd
}

func phaseRangesCommand(cmd *cobra.Command, args []string) {
	body, err := xbase.HTTPGet(adminURL(fmt.Sprintf("/v1/plan/ranges/%s/%s", args[0], args[1])))
	if err != nil {
		log.Panicf("hstorecli.phase.ranges.error:%+v", err)
	}
	cmd.Println(body)
}
