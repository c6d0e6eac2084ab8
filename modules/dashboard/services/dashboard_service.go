package services

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	memberservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	opportunityservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	trainingservices "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/services"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/listing"
)

// Stats are the dashboard totals.
type Stats struct {
	Interns         int
	VisibleInterns  int
	Trainings       int
	OpenJobs        int
	OpenInternships int
	// RecentInterns are the newest interns, newest first.
	RecentInterns []member.Member
}

const recentInterns = 5

type DashboardService struct {
	members       *memberservices.MemberService
	trainings     *trainingservices.TrainingService
	opportunities *opportunityservices.OpportunityService
}

func NewDashboardService(
	members *memberservices.MemberService,
	trainings *trainingservices.TrainingService,
	opportunities *opportunityservices.OpportunityService,
) *DashboardService {
	return &DashboardService{
		members:       members,
		trainings:     trainings,
		opportunities: opportunities,
	}
}

// Stats loads interns, trainings and opportunities concurrently. If any of
// the three fails the whole load fails.
func (s *DashboardService) Stats(ctx context.Context) (Stats, error) {
	var (
		interns       []member.Member
		programs      []training.Training
		opportunities []opportunity.Opportunity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		interns, err = s.members.GetInterns(gctx)
		return errors.Wrap(err, "load interns")
	})
	g.Go(func() error {
		var err error
		programs, err = s.trainings.GetAll(gctx)
		return errors.Wrap(err, "load trainings")
	})
	g.Go(func() error {
		var err error
		opportunities, err = s.opportunities.GetAll(gctx, opportunity.FindParams{})
		return errors.Wrap(err, "load opportunities")
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return Summarize(interns, programs, opportunities), nil
}

// Summarize computes the totals from already loaded collections.
func Summarize(interns []member.Member, programs []training.Training, opportunities []opportunity.Opportunity) Stats {
	st := Stats{Interns: len(interns), Trainings: len(programs)}
	for _, m := range interns {
		if m.IsVisible {
			st.VisibleInterns++
		}
	}
	for _, o := range opportunities {
		switch o.Type {
		case opportunity.TypeJob:
			st.OpenJobs++
		case opportunity.TypeInternship:
			st.OpenInternships++
		}
	}
	recent := listing.SortDefault(interns)
	if len(recent) > recentInterns {
		recent = recent[:recentInterns]
	}
	st.RecentInterns = recent
	return st
}
