package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	membercontrollers "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/mentor/domain/aggregates/mentor"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	opportunitycontrollers "github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/presentation/controllers"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/project/domain/aggregates/project"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/service/domain/aggregates/service"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/application"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/forms"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/listing"
)

// screen is what every entity list screen offers.
type screen[T listing.Record, F any] interface {
	application.Controller
	Load(ctx context.Context) error
	Page(query string, page int, filters ...func(T) bool) listing.Page[T]
	OpenCreate()
	OpenEdit(id string)
	Form() (*forms.Form[T, F], bool)
	RequestDelete(id string) error
	CancelDelete()
	ConfirmDelete(ctx context.Context) error
}

func entityCommands(state *rootState) []*cobra.Command {
	teams := entityCmd[member.Member, member.FormDTO](state, "teams", "/dashboard/teams")
	teams.AddCommand(newToggleCmd(state, "/dashboard/teams"))
	interns := entityCmd[member.Member, member.FormDTO](state, "interns", "/dashboard/interns")
	interns.AddCommand(newToggleCmd(state, "/dashboard/interns"))
	jobs := entityCmd[opportunity.Opportunity, opportunity.FormDTO](state, "jobs", "/dashboard/jobs")
	jobs.AddCommand(newFilterCmd(state, "/dashboard/jobs"))
	internships := entityCmd[opportunity.Opportunity, opportunity.FormDTO](state, "internships", "/dashboard/internships")
	internships.AddCommand(newFilterCmd(state, "/dashboard/internships"))

	return []*cobra.Command{
		teams,
		interns,
		entityCmd[mentor.Mentor, mentor.FormDTO](state, "mentors", "/dashboard/mentors"),
		jobs,
		internships,
		entityCmd[project.Project, project.FormDTO](state, "projects", "/dashboard/projects"),
		entityCmd[service.Service, service.FormDTO](state, "services", "/dashboard/services"),
		entityCmd[training.Training, training.FormDTO](state, "trainings", "/dashboard/trainings"),
	}
}

// openScreen resolves the screen at key and loads its collection.
func openScreen[T listing.Record, F any](ctx context.Context, state *rootState, key string) (screen[T, F], error) {
	rt := state.runtime()
	if err := rt.RequireSession(); err != nil {
		return nil, err
	}
	s, err := Controller[screen[T, F]](rt, key)
	if err != nil {
		return nil, err
	}
	rt.History.Push(key)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func entityCmd[T listing.Record, F any](state *rootState, name, key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage %s", name),
	}
	cmd.AddCommand(
		newListCmd[T, F](state, key),
		newShowCmd[T, F](state, key),
		newCreateCmd[T, F](state, key),
		newEditCmd[T, F](state, key),
		newDeleteCmd[T, F](state, key),
	)
	return cmd
}

func newListCmd[T listing.Record, F any](state *rootState, key string) *cobra.Command {
	var (
		query string
		page  int
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openScreen[T, F](cmd.Context(), state, key)
			if err != nil {
				return err
			}
			result := s.Page(query, page)
			if plain {
				return writePlain(cmd.OutOrStdout(), result)
			}
			return state.write(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "search text")
	cmd.Flags().IntVar(&page, "page", 1, "1-indexed page")
	cmd.Flags().BoolVar(&plain, "plain", false, "one line per record instead of JSON")
	return cmd
}

func newShowCmd[T listing.Record, F any](state *rootState, key string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the edit form of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScreen[T, F](cmd.Context(), state, key)
			if err != nil {
				return err
			}
			s.OpenEdit(args[0])
			form, ok := s.Form()
			if !ok {
				return errors.Errorf("no form at %s", state.runtime().History.Location())
			}
			if _, found := form.Target(); !found {
				return errors.Errorf("%s not found", args[0])
			}
			return state.write(cmd.OutOrStdout(), form.Draft().Current)
		},
	}
}

func newCreateCmd[T listing.Record, F any](state *rootState, key string) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a record from --set fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openScreen[T, F](cmd.Context(), state, key)
			if err != nil {
				return err
			}
			s.OpenCreate()
			return submit(cmd, state, s, sets)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value; repeat a list field once per item")
	return cmd
}

func newEditCmd[T listing.Record, F any](state *rootState, key string) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the --set fields of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScreen[T, F](cmd.Context(), state, key)
			if err != nil {
				return err
			}
			s.OpenEdit(args[0])
			return submit(cmd, state, s, sets)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value; repeat a list field once per item")
	return cmd
}

func submit[T listing.Record, F any](cmd *cobra.Command, state *rootState, s screen[T, F], sets []string) error {
	form, ok := s.Form()
	if !ok {
		return errors.New("no form is open")
	}
	values, err := ParseSets(sets)
	if err != nil {
		return err
	}
	if err := ApplySets(&form.Draft().Current, values); err != nil {
		return err
	}
	saved, err := form.Submit(cmd.Context())
	if err != nil {
		writeFieldErrors(cmd.ErrOrStderr(), err)
		return err
	}
	return state.write(cmd.OutOrStdout(), saved)
}

func newDeleteCmd[T listing.Record, F any](state *rootState, key string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScreen[T, F](cmd.Context(), state, key)
			if err != nil {
				return err
			}
			if err := s.RequestDelete(args[0]); err != nil {
				return errors.Wrap(err, args[0])
			}
			if !yes {
				s.CancelDelete()
				return errors.New("refusing to delete without --yes")
			}
			return s.ConfirmDelete(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the deletion")
	return cmd
}

func newToggleCmd(state *rootState, key string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Show or hide a member on the website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openScreen[member.Member, member.FormDTO](cmd.Context(), state, key); err != nil {
				return err
			}
			c, err := Controller[*membercontrollers.MemberController](state.runtime(), key)
			if err != nil {
				return err
			}
			return c.ToggleVisibility(cmd.Context(), args[0])
		},
	}
}

func newFilterCmd(state *rootState, key string) *cobra.Command {
	var location, query string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List openings the API filters by location and text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := state.runtime()
			if err := rt.RequireSession(); err != nil {
				return err
			}
			c, err := Controller[*opportunitycontrollers.OpportunityController](rt, key)
			if err != nil {
				return err
			}
			rt.History.Push(key)
			if err := c.Filter(cmd.Context(), strings.TrimSpace(location), strings.TrimSpace(query)); err != nil {
				return err
			}
			return state.write(cmd.OutOrStdout(), c.Page("", 1))
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "location filter")
	cmd.Flags().StringVar(&query, "q", "", "search text")
	return cmd
}
