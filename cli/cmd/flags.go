/*
 * Radon
 *
 * Copyright 2018 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xelabs/go-mysqlstack/xlog"
)

var (
	log        = xlog.NewStdLog(xlog.Level(xlog.INFO))
	localFlags = LocalFlags{}
)

// LocalFlags are flags that defined for local.
type LocalFlags struct {
	admin     string
	table     string
	procedure string
	statement string
	key       string
	from      string
	to        string
}

func addAdminFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&localFlags.admin, "admin", "127.0.0.1:8080", "--admin=[host:port], the admin address of hstore")
}

func adminURL(path string) string {
	return fmt.Sprintf("http://%s%s", localFlags.admin, path)
}

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOutput(buf)
	root.SetArgs(args)

	_, err = root.ExecuteC()
	return buf.String(), err
}
