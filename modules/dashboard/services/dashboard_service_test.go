package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/member/domain/aggregates/member"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/opportunity/domain/aggregates/opportunity"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/modules/training/domain/aggregates/training"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/crud"
)

func TestSummarize(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var interns []member.Member
	for i := 0; i < 7; i++ {
		m := member.Member{Name: fmt.Sprintf("intern %d", i), IsVisible: i%2 == 0}
		m.CreatedAt = crud.Timestamp{Time: base.AddDate(0, 0, i)}
		interns = append(interns, m)
	}
	st := Summarize(interns,
		[]training.Training{{}, {}},
		[]opportunity.Opportunity{{Type: opportunity.TypeInternship}, {Type: opportunity.TypeJob}, {Type: "OTHER"}},
	)

	assert.Equal(t, 7, st.Interns)
	assert.Equal(t, 4, st.VisibleInterns)
	assert.Equal(t, 2, st.Trainings)
	assert.Equal(t, 1, st.OpenJobs)
	assert.Equal(t, 1, st.OpenInternships)
	assert.Len(t, st.RecentInterns, recentInterns)
	assert.Equal(t, "intern 6", st.RecentInterns[0].Name)
	assert.Equal(t, "intern 0", interns[0].Name)
}

func TestSummarize_RecentInternsTieOnID(t *testing.T) {
	at := crud.Timestamp{Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	interns := []member.Member{
		{Entity: crud.Entity{ID: "a", CreatedAt: at}, Name: "Asha"},
		{Entity: crud.Entity{ID: "c", CreatedAt: crud.Timestamp{Time: at.AddDate(0, 0, -1)}}, Name: "Chandra"},
		{Entity: crud.Entity{ID: "b", CreatedAt: at}, Name: "Bikash"},
	}
	st := Summarize(interns, nil, nil)

	names := make([]string, 0, len(st.RecentInterns))
	for _, m := range st.RecentInterns {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Bikash", "Asha", "Chandra"}, names)
	assert.Equal(t, "a", interns[0].ID)
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil, nil, nil)
	assert.Zero(t, st.Interns)
	assert.Empty(t, st.RecentInterns)
}
