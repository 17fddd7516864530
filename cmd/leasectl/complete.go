package main

import (
	"fmt"

	"bus-seat-booking/internal/domain/schedule"

	"github.com/spf13/cobra"
)

var completeBefore string

var completeCmd = &cobra.Command{
	Use:   "complete-departed",
	Short: "Mark confirmed bookings of past journeys as completed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		before := schedule.JourneyDateOf(cur.clock.Now())
		if completeBefore != "" {
			d, err := schedule.ParseJourneyDate(completeBefore)
			if err != nil {
				return err
			}
			before = d
		}

		n, err := cur.bookings.CompleteDeparted(cmd.Context(), before)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "completed %d booking(s) with journey date before %s\n", n, before)
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeBefore, "before", "", "journey date bound (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(completeCmd)
}
