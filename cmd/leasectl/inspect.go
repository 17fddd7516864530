package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"bus-seat-booking/internal/usecase/queries"

	"github.com/spf13/cobra"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <schedule-id> <journey-date>",
	Short: "List the live seat locks of a schedule run",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scheduleID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid schedule id %q", args[0])
		}

		views, err := cur.inspect.Inspect(cmd.Context(), scheduleID, args[1])
		if err != nil {
			return err
		}

		if inspectJSON {
			return printLocksJSON(cmd.OutOrStdout(), views)
		}
		return printLocksTable(cmd.OutOrStdout(), views)
	},
}

func printLocksJSON(out io.Writer, views []queries.LeaseView) error {
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printLocksTable(out io.Writer, views []queries.LeaseView) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEAT\tSESSION\tEXPIRES\tREMAINING")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%ds\n", v.SeatNumber, v.SessionID, v.ExpiresAt.Format("2006-01-02 15:04:05"), v.SecondsRemaining)
	}
	return w.Flush()
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}
