package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/legalsuite/go-legalsuite/legalapi"
	"github.com/legalsuite/go-legalsuite/session"
	"github.com/legalsuite/go-legalsuite/token"
)

var (
	bookAdvocateID int
	bookDate       string
	bookTime       string
	bookPurpose    string

	uploadCaseID int
	uploadTitle  string
)

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resident session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			sess, err := app.currentSession()
			if err != nil {
				return err
			}
			if !sess.LoggedIn() {
				exitWithMessage("Not logged in.")
			}

			fmt.Printf("Name:  %s\n", sess.DisplayName)
			fmt.Printf("Role:  %s\n", sess.Role)
			fmt.Printf("Route: %s\n", sess.Role.DashboardRoute())
			if peek := token.PeekClaims(sess.AccessToken); peek.Exp != nil {
				status := "valid"
				if peek.Expired() {
					status = "expired"
				}
				fmt.Printf("Token: %s (expires %s)\n", status, peek.Exp.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard for the resident session's role",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			sess, err := app.currentSession()
			if err != nil {
				return err
			}
			if session.GuardRoute(sess) == session.LoginRoute {
				exitWithMessage("Not logged in. Run 'legalsuite login' or 'legalsuite otp'.")
			}

			if sess.Role.IsClient() {
				dashboard, err := app.api.FetchClientDashboard(cmd.Context())
				if err != nil {
					return err
				}
				printClientDashboard(dashboard)
				return nil
			}

			dashboard, err := app.api.FetchAdvocateDashboard(cmd.Context())
			if err != nil {
				return err
			}
			printAdvocateDashboard(dashboard)
			return nil
		},
	}
}

func newAdvocatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "advocates",
		Short: "List advocates accepting appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			advocates, err := app.api.ActiveAdvocates(cmd.Context())
			if err != nil {
				return err
			}
			for _, advocate := range advocates {
				if advocate.IsActive {
					fmt.Printf("%4d  %s\n", advocate.ID, advocate.FullName)
				}
			}
			return nil
		},
	}
}

func newBookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment with an advocate",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			err = app.api.BookAppointment(cmd.Context(), legalapi.AppointmentRequest{
				AdvocateID:      bookAdvocateID,
				AppointmentDate: bookDate,
				AppointmentTime: bookTime,
				Purpose:         bookPurpose,
			})
			if err != nil {
				return err
			}
			fmt.Println("Appointment requested.")
			return nil
		},
	}
	cmd.Flags().IntVar(&bookAdvocateID, "advocate", 0, "advocate ID (see 'legalsuite advocates')")
	cmd.Flags().StringVar(&bookDate, "date", "", "appointment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bookTime, "time", "", "appointment time (HH:MM)")
	cmd.Flags().StringVar(&bookPurpose, "purpose", "", "purpose of the meeting")
	_ = cmd.MarkFlagRequired("advocate")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func newUploadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document to a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			title := uploadTitle
			if title == "" {
				title = filepath.Base(args[0])
			}
			err = app.api.UploadDocument(cmd.Context(), legalapi.DocumentUpload{
				CaseID:   uploadCaseID,
				Title:    title,
				FileName: filepath.Base(args[0]),
				Content:  file,
			})
			if err != nil {
				return err
			}
			fmt.Println("Document uploaded.")
			return nil
		},
	}
	cmd.Flags().IntVar(&uploadCaseID, "case", 0, "case ID")
	cmd.Flags().StringVar(&uploadTitle, "title", "", "document title (defaults to file name)")
	_ = cmd.MarkFlagRequired("case")
	return cmd
}

func printClientDashboard(dashboard *legalapi.ClientDashboard) {
	fmt.Printf("Welcome, %s\n\n", dashboard.Profile.FullName)

	fmt.Printf("Cases (%d)\n", len(dashboard.Cases))
	for _, c := range dashboard.Cases {
		title := c.Title
		if title == "" {
			title = c.CaseTitle
		}
		fmt.Printf("  #%d %-40s %-10s %s\n", c.ID, title, c.Status, c.LawyerName)
	}

	fmt.Printf("\nHearings (%d)\n", len(dashboard.Hearings))
	for _, h := range dashboard.Hearings {
		fmt.Printf("  #%d %-30s %s %s\n", h.ID, h.CourtName, h.NextHearing, h.Status)
	}

	fmt.Printf("\nPayments (%d)\n", len(dashboard.Payments))
	for _, p := range dashboard.Payments {
		fmt.Printf("  #%d %-12s %s %s\n", p.ID, p.Amount, p.Date, p.Description)
	}
}

func printAdvocateDashboard(dashboard *legalapi.AdvocateDashboard) {
	fmt.Printf("Welcome, %s\n\n", dashboard.Profile.FullName)

	fmt.Printf("Appointments (%d)\n", len(dashboard.Appointments))
	for _, a := range dashboard.Appointments {
		fmt.Printf("  #%d %-25s %s %s  [%s]\n", a.ID, a.ClientName, a.AppointmentDate, a.AppointmentTime, a.Status)
	}

	fmt.Printf("\nHearings (%d)\n", len(dashboard.Hearings))
	for _, h := range dashboard.Hearings {
		fmt.Printf("  #%d %-30s %s %s\n", h.ID, h.CaseTitle, h.Date, h.Time)
	}
}
