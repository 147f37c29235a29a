/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"github.com/guojianwei001/h-store/catalog"
	"github.com/guojianwei001/h-store/xbase"

	"github.com/spf13/cobra"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "find the partition of a key under the active phase",
		Run:   lookupCommand,
	}
	addAdminFlag(cmd)
	cmd.Flags().StringVar(&localFlags.table, "table", "", "--table=[table], the partitioned table")
	cmd.Flags().StringVar(&localFlags.procedure, "procedure", "", "--procedure=[name], route by the table of the procedure")
	cmd.Flags().StringVar(&localFlags.statement, "statement", "", "--statement=[procedure.statement], route by the table of the statement")
	cmd.Flags().StringVar(&localFlags.key, "key", "", "--key=[key], the key text")
	return cmd
}

func lookupCommand(cmd *cobra.Command, args []string) {
	type request struct {
		Table  string          `json:"table,omitempty"`
		Entity *catalog.Entity `json:"entity,omitempty"`
		Key    string          `json:"key"`
	}

	req := &request{
		Table: localFlags.table,
		Key:   localFlags.key,
	}
	switch {
	case localFlags.procedure != "":
		e := catalog.ProcedureEntity(localFlags.procedure)
		req.Entity = &e
	case localFlags.statement != "":
		req.Entity = &catalog.Entity{Kind: catalog.KindStatement, Name: localFlags.statement}
	}

	body, err := xbase.HTTPPost(adminURL("/v1/plan/lookup"), req)
	if err != nil {
		log.Panicf("hstorecli.lookup.error:%+v", err)
	}
	cmd.Println(body)
}
