package legalapi

import (
	"context"
	"fmt"
)

const (
	activeAdvocatesPath      = "advocates/active/"
	profilePath              = "user/profile/"
	clientCasesPath          = "client/cases/"
	clientHearingsPath       = "client/hearings/"
	clientPaymentsPath       = "client/payments/"
	advocateAppointmentsPath = "advocate/appointments/"
	advocateHearingsPath     = "advocate/hearings/"
	bookAppointmentPath      = "appointments/book/"
)

// ActiveAdvocates lists advocates accepting appointments. This is the
// one unauthenticated data endpoint.
func (c *Client) ActiveAdvocates(ctx context.Context) ([]Advocate, error) {
	var advocates []Advocate
	if err := c.get(ctx, activeAdvocatesPath, &advocates); err != nil {
		return nil, err
	}
	return advocates, nil
}

// Profile fetches the authenticated user's own record.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, profilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ClientCases lists the cases visible in the client portal.
func (c *Client) ClientCases(ctx context.Context) ([]Case, error) {
	var cases []Case
	if err := c.get(ctx, clientCasesPath, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// ClientHearings lists the client's upcoming hearings.
func (c *Client) ClientHearings(ctx context.Context) ([]Hearing, error) {
	var hearings []Hearing
	if err := c.get(ctx, clientHearingsPath, &hearings); err != nil {
		return nil, err
	}
	return hearings, nil
}

// ClientPayments lists the client's payment history.
func (c *Client) ClientPayments(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := c.get(ctx, clientPaymentsPath, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// AdvocateAppointments lists appointments booked with the advocate.
func (c *Client) AdvocateAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.get(ctx, advocateAppointmentsPath, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// AdvocateHearings lists the advocate's hearing calendar.
func (c *Client) AdvocateHearings(ctx context.Context) ([]Hearing, error) {
	var hearings []Hearing
	if err := c.get(ctx, advocateHearingsPath, &hearings); err != nil {
		return nil, err
	}
	return hearings, nil
}

// BookAppointment requests a meeting with an advocate.
func (c *Client) BookAppointment(ctx context.Context, request AppointmentRequest) error {
	return c.postJSON(ctx, bookAppointmentPath, request, nil)
}

// UpdateAppointmentStatus confirms or declines a booked appointment.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, appointmentID int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.patchJSON(ctx, fmt.Sprintf("appointments/%d/status/", appointmentID), body, nil)
}

// UpdateCase applies a partial update to a case. Fields maps JSON
// field names to new values so callers patch only what changed.
func (c *Client) UpdateCase(ctx context.Context, caseID int, fields map[string]any) error {
	return c.patchJSON(ctx, fmt.Sprintf("cases/%d/", caseID), fields, nil)
}
