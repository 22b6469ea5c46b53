package legalapi

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ClientDashboard aggregates everything the client portal's landing
// view shows.
type ClientDashboard struct {
	Profile  *Profile
	Cases    []Case
	Hearings []Hearing
	Payments []Payment
}

// FetchClientDashboard loads the client dashboard. The profile fetch
// is load-bearing and fails the whole call; the three list fetches
// run concurrently and each degrades to an empty list on its own
// failure. The function returns only after all three have settled so
// a dashboard is never rendered from a partial fan-out.
func (c *Client) FetchClientDashboard(ctx context.Context) (*ClientDashboard, error) {
	profile, err := c.Profile(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &ClientDashboard{
		Profile:  profile,
		Cases:    []Case{},
		Hearings: []Hearing{},
		Payments: []Payment{},
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if cases, err := c.ClientCases(groupCtx); err == nil {
			dashboard.Cases = cases
		} else {
			c.logger.Warn().Err(err).Msg("dashboard cases fetch failed")
		}
		return nil
	})
	group.Go(func() error {
		if hearings, err := c.ClientHearings(groupCtx); err == nil {
			dashboard.Hearings = hearings
		} else {
			c.logger.Warn().Err(err).Msg("dashboard hearings fetch failed")
		}
		return nil
	})
	group.Go(func() error {
		if payments, err := c.ClientPayments(groupCtx); err == nil {
			dashboard.Payments = payments
		} else {
			c.logger.Warn().Err(err).Msg("dashboard payments fetch failed")
		}
		return nil
	})

	_ = group.Wait() // legs never return errors, but all must settle
	return dashboard, nil
}

// AdvocateDashboard aggregates the advocate workspace landing view.
type AdvocateDashboard struct {
	Profile      *Profile
	Appointments []Appointment
	Hearings     []Hearing
}

// FetchAdvocateDashboard loads the advocate dashboard with the same
// settle-all contract as the client variant.
func (c *Client) FetchAdvocateDashboard(ctx context.Context) (*AdvocateDashboard, error) {
	profile, err := c.Profile(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &AdvocateDashboard{
		Profile:      profile,
		Appointments: []Appointment{},
		Hearings:     []Hearing{},
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if appointments, err := c.AdvocateAppointments(groupCtx); err == nil {
			dashboard.Appointments = appointments
		} else {
			c.logger.Warn().Err(err).Msg("dashboard appointments fetch failed")
		}
		return nil
	})
	group.Go(func() error {
		if hearings, err := c.AdvocateHearings(groupCtx); err == nil {
			dashboard.Hearings = hearings
		} else {
			c.logger.Warn().Err(err).Msg("dashboard hearings fetch failed")
		}
		return nil
	})

	_ = group.Wait()
	return dashboard, nil
}
