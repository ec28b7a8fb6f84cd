package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	showapp "github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and browse sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var req struct {
		name, room, from, to, days, notes string
		pcg, com, adv                     int
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register the sessions of an event over a date range",
		Example: `  showmanager session add --name "Concerto" --room Arena --from 01/03/2024
  showmanager session add --name "Peça" --room Multiuso --from 01/03/2024 --to 31/03/2024 --days sab,dom --pcg 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			weekdays, err := parseWeekdays(req.days)
			if err != nil {
				return err
			}
			resp, err := app.Sessions.Register(cmd.Context(), registerRequest(
				req.name, req.room, req.from, req.to, req.notes, weekdays,
				showapp.Audience{PCG: req.pcg, Commercial: req.com, Adverse: req.adv},
			))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRegistered(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.name, "name", "", "Event name")
	cmd.Flags().StringVar(&req.room, "room", "", "Room (Arena, Multiuso, Mezanino)")
	cmd.Flags().StringVar(&req.from, "from", "", "First date, DD/MM/YYYY")
	cmd.Flags().StringVar(&req.to, "to", "", "Last date, DD/MM/YYYY (defaults to --from)")
	cmd.Flags().StringVar(&req.days, "days", "", "Comma-separated weekdays, e.g. sab,dom (defaults to every day)")
	cmd.Flags().IntVar(&req.pcg, "pcg", 0, "PCG audience of each session")
	cmd.Flags().IntVar(&req.com, "com", 0, "Commercial audience of each session")
	cmd.Flags().IntVar(&req.adv, "adv", 0, "Adverse audience of each session")
	cmd.Flags().StringVar(&req.notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func registerRequest(name, room, from, to, notes string, weekdays []time.Weekday, aud showapp.Audience) showapp.RegisterRequest {
	return showapp.RegisterRequest{
		EventName: strings.TrimSpace(name),
		Room:      room,
		From:      from,
		To:        to,
		Weekdays:  weekdays,
		Notes:     strings.TrimSpace(notes),
		Audience:  aud,
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	var filter showapp.SessionFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.Search(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "Event name contains (case-insensitive)")
	cmd.Flags().StringVar(&filter.Room, "room", "", "Room, or \"all\"")
	cmd.Flags().StringVar(&filter.Year, "year", "", "Year, YYYY")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			s, err := app.Sessions.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}
}

func newSessionEditCmd(app *App) *cobra.Command {
	var name, date, room, notes string
	var pcg, com, adv int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			s, err := app.Sessions.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				s.EventName = strings.TrimSpace(name)
			}
			if flags.Changed("date") {
				if s.Date, err = domain.ParseDate(date); err != nil {
					return err
				}
			}
			if flags.Changed("room") {
				if s.Room, err = domain.ParseRoom(room); err != nil {
					return err
				}
			}
			if flags.Changed("pcg") {
				s.AudiencePCG = pcg
			}
			if flags.Changed("com") {
				s.AudienceCommercial = com
			}
			if flags.Changed("adv") {
				s.AudienceAdverse = adv
			}
			if flags.Changed("notes") {
				s.Notes = strings.TrimSpace(notes)
			}

			if err := app.Sessions.Update(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Event name")
	cmd.Flags().StringVar(&date, "date", "", "Date, DD/MM/YYYY")
	cmd.Flags().StringVar(&room, "room", "", "Room")
	cmd.Flags().IntVar(&pcg, "pcg", 0, "PCG audience")
	cmd.Flags().IntVar(&com, "com", 0, "Commercial audience")
	cmd.Flags().IntVar(&adv, "adv", 0, "Adverse audience")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSessionID(args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %d\n", id)
			return nil
		},
	}
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Operate on every session of an event",
	}

	var yes bool
	remove := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove all sessions of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to remove every session of %q without --yes", args[0])
			}
			resp, err := app.Sessions.DeleteEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventDeleted(resp))
			return nil
		},
	}
	remove.Flags().BoolVar(&yes, "yes", false, "Confirm the removal")

	var filter showapp.SessionFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List the distinct event names of a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Sessions.EventNames(cmd.Context(), filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No events found.")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	list.Flags().StringVar(&filter.Name, "name", "", "Event name contains (case-insensitive)")
	list.Flags().StringVar(&filter.Room, "room", "", "Room, or \"all\"")
	list.Flags().StringVar(&filter.Year, "year", "", "Year, YYYY")

	cmd.AddCommand(list, remove)
	return cmd
}

func newYearsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years that have sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := app.Sessions.Years(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatYears(years))
			return nil
		},
	}
}

func parseSessionID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid session id %q", s)
	}
	return id, nil
}

// parseWeekdays reads a comma-separated weekday list. Blank means every day.
func parseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := domain.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
