package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/legalsuite/go-legalsuite/legalapi"
)

var (
	loginUsername string

	registerUsername  string
	registerEmail     string
	registerFirstName string
	registerLastName  string
	registerContact   string
	registerAddress   string
	registerNotes     string

	otpEmail string
)

func newLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with username and password (advocates and staff)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			username := loginUsername
			if username == "" {
				username = promptLine("Username: ")
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			outcome := app.flows.PasswordLogin(cmd.Context(), username, password)
			if !outcome.OK {
				exitWithMessage(outcome.Message())
			}
			fmt.Printf("Logged in. Dashboard: %s\n", outcome.Route)
			return nil
		},
	}
	cmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	return cmd
}

func newRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
	}

	advocate := &cobra.Command{
		Use:   "advocate",
		Short: "Register as an advocate (password login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			password, err := promptPassword("Create password: ")
			if err != nil {
				return err
			}

			// The backend expects first and last name pre-joined.
			outcome := app.flows.RegisterAdvocate(cmd.Context(), legalapi.AdvocateRegistration{
				Username:      registerUsername,
				Email:         registerEmail,
				Password:      password,
				FullName:      registerFirstName + " " + registerLastName,
				ContactNumber: registerContact,
			})
			if !outcome.OK {
				if outcome.Detail != "" {
					exitWithMessage(fmt.Sprintf("%s (%s)", outcome.Message(), outcome.Detail))
				}
				exitWithMessage(outcome.Message())
			}
			fmt.Println("Registration successful. Please log in.")
			return nil
		},
	}

	client := &cobra.Command{
		Use:   "client",
		Short: "Register as a client (passwordless OTP login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			outcome := app.flows.RegisterClient(cmd.Context(), legalapi.ClientRegistration{
				Username:      registerUsername,
				Email:         registerEmail,
				FullName:      registerFirstName + " " + registerLastName,
				ContactNumber: registerContact,
				Address:       registerAddress,
				Notes:         registerNotes,
			})
			if !outcome.OK {
				exitWithMessage(outcome.Message())
			}
			fmt.Println("Registration successful. Log in with your email via 'legalsuite otp'.")
			return nil
		},
	}

	for _, sub := range []*cobra.Command{advocate, client} {
		sub.Flags().StringVar(&registerUsername, "username", "", "account username")
		sub.Flags().StringVar(&registerEmail, "email", "", "email address")
		sub.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
		sub.Flags().StringVar(&registerLastName, "last-name", "", "last name")
		sub.Flags().StringVar(&registerContact, "contact", "", "contact number")
		_ = sub.MarkFlagRequired("username")
		_ = sub.MarkFlagRequired("email")
		_ = sub.MarkFlagRequired("first-name")
		_ = sub.MarkFlagRequired("last-name")
	}
	client.Flags().StringVar(&registerAddress, "address", "", "postal address")
	client.Flags().StringVar(&registerNotes, "notes", "", "notes for the advocate")

	cmd.AddCommand(advocate, client)
	return cmd
}

func newOTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Log in as a client with an emailed one-time passcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}

			email := otpEmail
			if email == "" {
				email = promptLine("Registered email: ")
			}

			flow := app.flows.NewOTPLogin()
			if step := flow.RequestCode(cmd.Context(), email); !step.OK {
				exitWithMessage(step.Message())
			}
			fmt.Printf("Code sent to %s\n", flow.Email())

			for {
				code := promptLine("Enter code (blank to re-enter email): ")
				if code == "" {
					flow.Back()
					email = promptLine("Registered email: ")
					if step := flow.RequestCode(cmd.Context(), email); !step.OK {
						exitWithMessage(step.Message())
					}
					fmt.Printf("Code sent to %s\n", flow.Email())
					continue
				}

				outcome := flow.Verify(cmd.Context(), code)
				if outcome.OK {
					fmt.Printf("Logged in. Dashboard: %s\n", outcome.Route)
					return nil
				}
				fmt.Fprintln(os.Stderr, outcome.Message())
			}
		},
	}
	cmd.Flags().StringVar(&otpEmail, "email", "", "registered client email")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the resident session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(verboseFlag)
			if err != nil {
				return err
			}
			if err := app.flows.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
