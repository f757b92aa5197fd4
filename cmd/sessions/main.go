// Command sessions prints the authenticated party's consultation sessions
// as a table. One-shot, request/response only; the realtime channel is
// never touched.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"consultation-lab/auth"
	"consultation-lab/internal"
	"consultation-lab/repositories"
)

func main() {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	log := logs.GetLoggerFromString(config.LogLevel)
	tokens := auth.NewTokenProvider(config.AuthToken)
	api := repositories.NewConsultationClient(log, config.APIBaseURL, config.HTTPTimeout, tokens.Factory())

	ctx, cancel := context.WithTimeout(context.Background(), config.HTTPTimeout)
	defer cancel()

	sessions, err := api.UserSessions(ctx)
	if err != nil {
		color.Red.Printf("Could not list sessions: %v\n", err)
		os.Exit(1)
	}

	color.Green.Printf("%d session(s)\n", len(sessions))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Counterpart", "Owner", "Created"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, s := range sessions {
		table.Append([]string{
			s.ID,
			s.CounterpartName,
			s.CounterpartOwnerName,
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}
