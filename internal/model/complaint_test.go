package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/crm/internal/errors"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func complaintInStatus(s Status) *Complaint {
	return &Complaint{
		ID:        "2f6b0e38-58a4-4a1e-9d0e-2a9c4a4f6a11",
		Name:      "Jane Doe",
		Email:     "jane@x.com",
		Category:  CategoryCCTV,
		Text:      "Camera offline since Monday",
		Reference: "CMP-1710072000000-042",
		Status:    s,
		Priority:  PriorityMedium,
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}
}

func TestComplaintTransitions(t *testing.T) {
	legal := map[Status]map[Status]bool{
		StatusPending:    {StatusInProgress: true, StatusClosed: true},
		StatusInProgress: {StatusResolved: true, StatusPending: true, StatusClosed: true},
		StatusResolved:   {StatusClosed: true},
		StatusClosed:     {},
	}

	for _, from := range Statuses {
		for _, to := range Statuses {
			c := complaintInStatus(from)
			before := *c

			err := c.TransitionTo(to, "", testNow)
			if legal[from][to] {
				require.NoError(t, err, "transition %s -> %s must be allowed", from, to)
				require.Equal(t, to, c.Status, "status must be updated after %s -> %s", from, to)
				require.Equal(t, testNow, c.UpdatedAt, "updated at must be stamped")
				continue
			}

			var trErr *apperrors.InvalidStatusTransitionErr
			require.ErrorAs(t, err, &trErr, "transition %s -> %s must be rejected", from, to)
			require.Equal(t, string(from), trErr.From)
			require.Equal(t, string(to), trErr.To)
			require.Equal(t, before, *c, "complaint must stay unchanged after rejected transition")
		}
	}
}

func TestClosedIsTerminal(t *testing.T) {
	require.True(t, StatusClosed.Terminal(), "closed must be terminal")
	require.False(t, StatusResolved.Terminal(), "resolved can still be closed")

	c := complaintInStatus(StatusClosed)
	err := c.TransitionTo(StatusPending, "", testNow)
	require.Error(t, err, "closed complaint can't be reopened")
}

func TestResolvedAtStampedOnce(t *testing.T) {
	c := complaintInStatus(StatusInProgress)

	t.Log("first resolution stamps resolved at and stores resolution")
	{
		err := c.TransitionTo(StatusResolved, "Camera replaced", testNow)
		require.NoError(t, err)
		require.NotNil(t, c.ResolvedAt)
		require.Equal(t, testNow, *c.ResolvedAt)
		require.NotNil(t, c.Resolution)
		require.Equal(t, "Camera replaced", *c.Resolution)
	}

	t.Log("closing afterwards keeps resolved at")
	{
		err := c.TransitionTo(StatusClosed, "", testNow.Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, testNow, *c.ResolvedAt, "resolved at must not change")
	}
}

func TestResolvedAtNotResetOnSecondResolution(t *testing.T) {
	c := complaintInStatus(StatusInProgress)
	require.NoError(t, c.TransitionTo(StatusResolved, "", testNow))

	// resolved -> in-progress is not allowed, so simulate reopening via stored state
	c.Status = StatusInProgress
	require.NoError(t, c.TransitionTo(StatusResolved, "", testNow.Add(48*time.Hour)))
	require.Equal(t, testNow, *c.ResolvedAt, "resolved at is set only on the first entry")
	require.Nil(t, c.Resolution, "empty resolution must not be stored")
}

func TestAssignTo(t *testing.T) {
	c := complaintInStatus(StatusPending)
	first := "7d1f3bb4-1c5e-4bd3-8f55-5f7b0a0e7f01"
	second := "0c5b3a73-9d59-4b0c-a1a4-2b6a0f6f2e02"

	t.Log("first assignment moves pending complaint to in-progress")
	{
		c.AssignTo(first, testNow)
		require.Equal(t, StatusInProgress, c.Status)
		require.Equal(t, first, *c.AssignedTo)
		require.Equal(t, testNow, *c.AssignedAt)
	}

	t.Log("reassignment changes assignee but keeps assigned at")
	{
		c.AssignTo(second, testNow.Add(time.Hour))
		require.Equal(t, second, *c.AssignedTo)
		require.Equal(t, testNow, *c.AssignedAt)
	}

	t.Log("assignment of resolved complaint keeps its status")
	{
		resolved := complaintInStatus(StatusResolved)
		resolved.AssignTo(first, testNow)
		require.Equal(t, StatusResolved, resolved.Status)
	}
}

func TestAddNoteAppends(t *testing.T) {
	c := complaintInStatus(StatusInProgress)
	c.AddNote("Called customer", "author-1", false, testNow)
	c.AddNote("Technician scheduled", "author-2", true, testNow.Add(time.Minute))

	require.Len(t, c.Notes, 2)
	require.Equal(t, "Called customer", c.Notes[0].Text)
	require.False(t, c.Notes[0].IsPublic)
	require.Equal(t, "author-2", c.Notes[1].AddedBy)

	view := c.PublicView()
	require.Len(t, view.Notes, 1, "only public notes are visible to customer")
	require.Len(t, c.Notes, 2, "public view must not modify complaint")
}

func TestTrackEmail(t *testing.T) {
	c := complaintInStatus(StatusPending)

	c.TrackEmail(EmailTypeConfirmation, EmailRecord{SentAt: testNow, Status: EmailStatusFailed, Error: "boom"})
	require.False(t, c.ConfirmationEmailSent, "failed confirmation must not be marked as sent")

	c.TrackEmail(EmailTypeConfirmation, EmailRecord{SentAt: testNow, Status: EmailStatusSent, MessageID: "msg-1"})
	require.True(t, c.ConfirmationEmailSent)
	require.Len(t, c.EmailsSent, 2)
	require.Equal(t, EmailTypeConfirmation, c.EmailsSent[1].Type)
}

func TestOverdue(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		status   Status
		age      time.Duration
		overdue  bool
	}{
		{name: "high priority older than 3 days", priority: PriorityHigh, status: StatusPending, age: 4 * 24 * time.Hour, overdue: true},
		{name: "high priority exactly 3 days", priority: PriorityHigh, status: StatusPending, age: 3*24*time.Hour + time.Hour, overdue: false},
		{name: "critical priority older than 3 days", priority: PriorityCritical, status: StatusInProgress, age: 5 * 24 * time.Hour, overdue: true},
		{name: "medium priority 5 days", priority: PriorityMedium, status: StatusPending, age: 5 * 24 * time.Hour, overdue: false},
		{name: "low priority 8 days", priority: PriorityLow, status: StatusInProgress, age: 8 * 24 * time.Hour, overdue: true},
		{name: "resolved is never overdue", priority: PriorityHigh, status: StatusResolved, age: 30 * 24 * time.Hour, overdue: false},
		{name: "closed is never overdue", priority: PriorityLow, status: StatusClosed, age: 30 * 24 * time.Hour, overdue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := complaintInStatus(tt.status)
			c.Priority = tt.priority
			c.CreatedAt = testNow.Add(-tt.age)
			require.Equal(t, tt.overdue, c.IsOverdue(testNow))
		})
	}
}

func TestAgeInDays(t *testing.T) {
	c := complaintInStatus(StatusPending)
	c.CreatedAt = testNow.Add(-(2*24*time.Hour + 23*time.Hour))
	require.Equal(t, 2, c.AgeInDays(testNow))

	c.CreatedAt = testNow.Add(time.Hour)
	require.Equal(t, 0, c.AgeInDays(testNow), "future creation date means zero age")
}

func TestOverdueFiltersMatchIsOverdue(t *testing.T) {
	filters := OverdueFilters(testNow)
	require.Len(t, filters, 2)

	matches := func(c *Complaint) bool {
		for _, f := range filters {
			statusOk, priorityOk := false, false
			for _, s := range f.Statuses {
				statusOk = statusOk || s == c.Status
			}
			for _, p := range f.Priorities {
				priorityOk = priorityOk || p == c.Priority
			}
			if statusOk && priorityOk && !c.CreatedAt.After(*f.CreatedNotAfter) {
				return true
			}
		}
		return false
	}

	ages := []time.Duration{
		3 * 24 * time.Hour,
		4*24*time.Hour - time.Second,
		4 * 24 * time.Hour,
		7*24*time.Hour + 23*time.Hour,
		8 * 24 * time.Hour,
		20 * 24 * time.Hour,
	}

	for _, st := range Statuses {
		for _, pr := range Priorities {
			for _, age := range ages {
				c := complaintInStatus(st)
				c.Priority = pr
				c.CreatedAt = testNow.Add(-age)
				require.Equal(t, c.IsOverdue(testNow), matches(c), "status %s, priority %s, age %s", st, pr, age)
			}
		}
	}
}
