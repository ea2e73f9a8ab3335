/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/riskboard/cmd"
	"github.com/humaidq/riskboard/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "riskboard",
		Usage: "Readmission risk dashboard for discharged patients",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdImport,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
