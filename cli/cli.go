/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package main

import (
	"fmt"
	"os"

	"github.com/guojianwei001/h-store/cli/cmd"

	"github.com/spf13/cobra"
)

const (
	cliName        = "hstorecli"
	cliDescription = "A simple command line client for hstore"
)

var (
	rootCmd = &cobra.Command{
		Use:        cliName,
		Short:      cliDescription,
		SuggestFor: []string{"hstorecli"},
	}
)

func init() {
	rootCmd.AddCommand(cmd.NewVersionCommand())
	rootCmd.AddCommand(cmd.NewPhaseCommand())
	rootCmd.AddCommand(cmd.NewLookupCommand())
	rootCmd.AddCommand(cmd.NewReconfigCommand())
	rootCmd.AddCommand(cmd.NewDebugCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
