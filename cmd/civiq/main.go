package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"civiq/internal/bootstrap"
	reportdto "civiq/internal/modules/report/dto"
	"civiq/internal/platform/config"
	apperrors "civiq/internal/platform/errors"
	"civiq/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "civiq",
		Short:         "Community problem reporting from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", "", "data directory (default ~/.civiq)")

	root.AddCommand(newLoginCmd(&homePath))
	root.AddCommand(newLogoutCmd(&homePath))
	root.AddCommand(newWhoamiCmd(&homePath))
	root.AddCommand(newReportCmd(&homePath))
	root.AddCommand(newProblemsCmd(&homePath))
	root.AddCommand(newQueueCmd(&homePath))
	root.AddCommand(newLeaderboardCmd(&homePath))
	root.AddCommand(newAnalyticsCmd(&homePath))
	root.AddCommand(newWatchCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log)
	return bootstrap.New(cfg)
}

func newLoginCmd(homePath *string) *cobra.Command {
	var name, contact, method, accountType, otp string

	login := &cobra.Command{
		Use:   "login --name <name> --contact <phone|email>",
		Short: "Request an OTP and verify it to start a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(contact) == "" {
				return fmt.Errorf("--name and --contact are required")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if strings.TrimSpace(otp) == "" {
				if err := app.SessionCLI.RequestOTP(context.Background(), name, contact, method); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "otp sent to %s, re-run with --otp <code>\n", contact)
				return nil
			}
			out, err := app.SessionCLI.Login(context.Background(), name, contact, method, otp, accountType)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", out.UserID, out.AccountType)
			return nil
		},
	}
	login.Flags().StringVar(&name, "name", "", "display name")
	login.Flags().StringVar(&contact, "contact", "", "10-digit phone or email address")
	login.Flags().StringVar(&method, "method", "phone", "contact method: phone|email")
	login.Flags().StringVar(&accountType, "type", "user", "account type: user|volunteer")
	login.Flags().StringVar(&otp, "otp", "", "one-time code received after the first call")
	return login
}

func newLogoutCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Active(context.Background())
			if err != nil {
				return err
			}
			if !out.Authenticated {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user=%s type=%s\n", out.UserID, out.AccountType)
			return nil
		},
	}
}

func newReportCmd(homePath *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Report problems"}

	var title, description, category, photoPath string
	var lat, lng float64
	var interactive bool
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Submit a new problem report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if interactive {
				return bootstrap.RunWizard(app)
			}
			if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
				return fmt.Errorf("--title and --description are required")
			}
			input := reportdto.SubmitInput{
				Title:       title,
				Description: description,
				Category:    category,
			}
			if photoPath != "" {
				photo, err := os.ReadFile(photoPath)
				if err != nil {
					return fmt.Errorf("read photo: %w", err)
				}
				input.PhotoName = filepath.Base(photoPath)
				input.Photo = photo
			}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				input.Lat, input.Lng = &lat, &lng
			}
			out, err := app.ReportCLI.Submit(context.Background(), input)
			if err != nil {
				return err
			}
			if out.Queued {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "offline: report saved locally as %s\n", out.LocalID)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report submitted: %s status=%s\n", out.Problem.ID, out.Problem.Status)
			return nil
		},
	}
	newCmd.Flags().StringVar(&title, "title", "", "short summary")
	newCmd.Flags().StringVar(&description, "description", "", "what did you see")
	newCmd.Flags().StringVar(&category, "category", "", "category: waste|air_pollution|water_pollution|noise_pollution|other")
	newCmd.Flags().StringVar(&photoPath, "photo", "", "photo file path")
	newCmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	newCmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	newCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "run the step-by-step wizard")
	report.AddCommand(newCmd)

	return report
}

func newProblemsCmd(homePath *string) *cobra.Command {
	problems := &cobra.Command{Use: "problems", Short: "Browse and manage reported problems"}

	problems.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reported problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no problems reported")
				return nil
			}
			for _, p := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t(%.5f, %.5f)\n", p.ID, p.Status, p.Category, p.Title, p.Lat, p.Lng)
			}
			return nil
		},
	})

	var problemID, status string
	statusCmd := &cobra.Command{
		Use:   "status --id <id> --set <status>",
		Short: "Update a problem's status (volunteers)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(problemID) == "" || strings.TrimSpace(status) == "" {
				return fmt.Errorf("--id and --set are required")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.UpdateStatus(context.Background(), problemID, status)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "problem %s is now %s\n", out.ID, out.Status)
			return nil
		},
	}
	statusCmd.Flags().StringVar(&problemID, "id", "", "problem id")
	statusCmd.Flags().StringVar(&status, "set", "", "new status: assigned|in_progress|solved")
	problems.AddCommand(statusCmd)

	return problems
}

func newQueueCmd(homePath *string) *cobra.Command {
	queue := &cobra.Command{Use: "queue", Short: "Manage the offline report queue"}

	queue.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List reports waiting for sync",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.QueueCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "queue is empty")
				return nil
			}
			for _, entry := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tqueued=%s\n", entry.ID, entry.Category, entry.Title, entry.EnqueuedAt.Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	})

	var oneshot bool
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Replay queued reports against the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if oneshot {
				// The detached worker retries with backoff so a queue
				// armed during an outage drains once connectivity
				// returns. It exits quietly when another pass already
				// holds the slot.
				if _, err := app.QueueCLI.RunWorker(context.Background()); err != nil && !errors.Is(err, apperrors.ErrSyncInProgress) {
					return err
				}
				return nil
			}
			out, err := app.QueueCLI.Sync(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "synced %d of %d, %d remaining\n", out.Synced, out.Attempted, out.Remaining)
			return nil
		},
	}
	syncCmd.Flags().BoolVar(&oneshot, "oneshot", false, "run as a quiet background worker with retries")
	queue.AddCommand(syncCmd)

	queue.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop all queued reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.QueueCLI.Clear(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "queue cleared")
			return nil
		},
	})

	return queue
}

func newLeaderboardCmd(homePath *string) *cobra.Command {
	var volunteers bool

	leaderboard := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show top contributors or top volunteers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.Leaderboard(context.Background())
			if err != nil {
				return err
			}
			board := out.Users
			if volunteers {
				board = out.Volunteers
			}
			if len(board) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no contributors yet")
				return nil
			}
			for _, entry := range board {
				if volunteers {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d %s %s\t%d pts\t%s\n", entry.Rank, entry.Badge, entry.Name, entry.Points, entry.Level)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d %s %s\t%d reports\n", entry.Rank, entry.Badge, entry.Name, entry.Contributions)
			}
			return nil
		},
	}
	leaderboard.Flags().BoolVar(&volunteers, "volunteers", false, "show the volunteer board instead of contributors")
	return leaderboard
}

func newAnalyticsCmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show community reporting analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.BoardCLI.Analytics(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total=%d resolved=%d resolution_rate=%.1f%% avg_resolution_days=%.1f\n",
				out.TotalReports, out.ResolvedReports, out.ResolutionRate, out.AvgResolutionDays)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "next_week_estimate=%d trend=%s\n", out.NextWeekEstimate, out.Trend)
			for category, count := range out.CategoryDistribution {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", category, count)
			}
			for _, day := range out.DailyReports {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", day.Date, day.Count)
			}
			return nil
		},
	}
}

func newWatchCmd(homePath *string) *cobra.Command {
	var lat, lng, radius float64

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Stream live problem updates for an area",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer func() { _ = app.RealtimeCLI.Disconnect() }()

			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
				if err := app.RealtimeCLI.JoinArea(ctx, lat, lng, radius); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "watching area (%.5f, %.5f) radius=%.1fkm\n", lat, lng, radius)
			}
			events, err := app.RealtimeCLI.Watch(ctx)
			if err != nil {
				return err
			}
			for event := range events {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", event.Event, event.Payload)
			}
			return nil
		},
	}
	watch.Flags().Float64Var(&lat, "lat", 0, "area latitude")
	watch.Flags().Float64Var(&lng, "lng", 0, "area longitude")
	watch.Flags().Float64Var(&radius, "radius", 5, "area radius in km")
	return watch
}
