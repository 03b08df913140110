package model

import (
	"time"

	apperrors "github.com/umalmyha/crm/internal/errors"
)

const hoursPerDay = 24

// Category is a product line complaint relates to
type Category string

const (
	// CategoryCCTV is complaint about CCTV
	CategoryCCTV Category = "CCTV"
	// CategoryHomeAutomation is complaint about home automation
	CategoryHomeAutomation Category = "Home Automation"
	// CategoryMotionWorks is complaint about motion works
	CategoryMotionWorks Category = "Motion Works"
	// CategoryGeneral is any other complaint
	CategoryGeneral Category = "General"
)

// Categories lists all supported categories
var Categories = []Category{CategoryCCTV, CategoryHomeAutomation, CategoryMotionWorks, CategoryGeneral}

// Valid reports whether category is one of supported categories
func (c Category) Valid() bool {
	for _, ct := range Categories {
		if ct == c {
			return true
		}
	}
	return false
}

// Status is complaint lifecycle state
type Status string

const (
	// StatusPending is initial complaint status
	StatusPending Status = "pending"
	// StatusInProgress means somebody works on complaint
	StatusInProgress Status = "in-progress"
	// StatusResolved means complaint has resolution
	StatusResolved Status = "resolved"
	// StatusClosed is terminal status
	StatusClosed Status = "closed"
)

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusClosed},
	StatusInProgress: {StatusResolved, StatusPending, StatusClosed},
	StatusResolved:   {StatusClosed},
	StatusClosed:     {},
}

// Statuses lists all complaint statuses
var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusClosed}

// Valid reports whether status is known
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether complaint in status s may be moved to next
func (s Status) CanTransitionTo(next Status) bool {
	for _, st := range statusTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transitions are possible from s
func (s Status) Terminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}

// Priority describes how urgent complaint or task is
type Priority string

const (
	// PriorityLow is low priority
	PriorityLow Priority = "low"
	// PriorityMedium is default priority
	PriorityMedium Priority = "medium"
	// PriorityHigh is high priority
	PriorityHigh Priority = "high"
	// PriorityCritical is the most urgent priority
	PriorityCritical Priority = "critical"
)

// Priorities lists all priorities
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether priority is known
func (p Priority) Valid() bool {
	for _, pr := range Priorities {
		if pr == p {
			return true
		}
	}
	return false
}

// OverdueAfterDays returns number of days open complaint may stay unresolved
func (p Priority) OverdueAfterDays() int {
	if p == PriorityHigh || p == PriorityCritical {
		return 3
	}
	return 7
}

// Note is a remark left on complaint by employee
type Note struct {
	Text     string    `json:"note" bson:"note" msgpack:"note"`
	AddedBy  string    `json:"addedBy" bson:"addedBy" msgpack:"addedBy"`
	AddedAt  time.Time `json:"addedAt" bson:"addedAt" msgpack:"addedAt"`
	IsPublic bool      `json:"isPublic" bson:"isPublic" msgpack:"isPublic"`
}

// EmailType is kind of email sent for complaint
type EmailType string

const (
	// EmailTypeConfirmation is sent once complaint is submitted
	EmailTypeConfirmation EmailType = "confirmation"
	// EmailTypeUpdate is sent when complaint status changed
	EmailTypeUpdate EmailType = "update"
	// EmailTypeResolution is sent when complaint is resolved
	EmailTypeResolution EmailType = "resolution"
)

// EmailStatus is delivery state of email
type EmailStatus string

const (
	// EmailStatusSent means provider accepted email
	EmailStatusSent EmailStatus = "sent"
	// EmailStatusDelivered means provider confirmed delivery
	EmailStatusDelivered EmailStatus = "delivered"
	// EmailStatusFailed means email wasn't sent
	EmailStatusFailed EmailStatus = "failed"
)

// EmailRecord tracks single email attempt
type EmailRecord struct {
	Type      EmailType   `json:"type" bson:"type" msgpack:"type"`
	SentAt    time.Time   `json:"sentAt" bson:"sentAt" msgpack:"sentAt"`
	MessageID string      `json:"messageId,omitempty" bson:"messageId,omitempty" msgpack:"messageId"`
	Status    EmailStatus `json:"status" bson:"status" msgpack:"status"`
	Error     string      `json:"error,omitempty" bson:"error,omitempty" msgpack:"error"`
}

// Complaint is complaint model entity
type Complaint struct {
	ID                    string        `json:"id" bson:"_id" msgpack:"id"`
	Name                  string        `json:"name" bson:"name" msgpack:"name"`
	Email                 string        `json:"email" bson:"email" msgpack:"email"`
	Contact               *string       `json:"contact" bson:"contact" msgpack:"contact"`
	Company               *string       `json:"company" bson:"company" msgpack:"company"`
	Category              Category      `json:"category" bson:"category" msgpack:"category"`
	Text                  string        `json:"complaint" bson:"complaint" msgpack:"complaint"`
	Reference             string        `json:"reference" bson:"reference" msgpack:"reference"`
	Status                Status        `json:"status" bson:"status" msgpack:"status"`
	Priority              Priority      `json:"priority" bson:"priority" msgpack:"priority"`
	AssignedTo            *string       `json:"assignedTo" bson:"assignedTo" msgpack:"assignedTo"`
	AssignedAt            *time.Time    `json:"assignedAt" bson:"assignedAt" msgpack:"assignedAt"`
	Resolution            *string       `json:"resolution" bson:"resolution" msgpack:"resolution"`
	ResolvedAt            *time.Time    `json:"resolvedAt" bson:"resolvedAt" msgpack:"resolvedAt"`
	ConfirmationEmailSent bool          `json:"confirmationEmailSent" bson:"confirmationEmailSent" msgpack:"confirmationEmailSent"`
	EmailsSent            []EmailRecord `json:"emailsSent" bson:"emailsSent" msgpack:"emailsSent"`
	Notes                 []Note        `json:"notes" bson:"notes" msgpack:"notes"`
	CreatedAt             time.Time     `json:"date" bson:"date" msgpack:"date"`
	UpdatedAt             time.Time     `json:"updatedAt" bson:"updatedAt" msgpack:"updatedAt"`
	Version               int           `json:"version" bson:"version" msgpack:"version"`
}

// AgeInDays returns number of full days since complaint was created
func (c *Complaint) AgeInDays(now time.Time) int {
	age := now.Sub(c.CreatedAt)
	if age < 0 {
		return 0
	}
	return int(age.Hours() / hoursPerDay)
}

// IsOpen reports whether complaint still requires actions
func (c *Complaint) IsOpen() bool {
	return c.Status != StatusResolved && c.Status != StatusClosed
}

// IsOverdue reports whether open complaint exceeded priority-dependent age limit
func (c *Complaint) IsOverdue(now time.Time) bool {
	return c.IsOpen() && c.AgeInDays(now) > c.Priority.OverdueAfterDays()
}

// TransitionTo moves complaint to next status, complaint is left untouched on error
func (c *Complaint) TransitionTo(next Status, resolution string, at time.Time) error {
	if !c.Status.CanTransitionTo(next) {
		return apperrors.NewInvalidStatusTransitionErr(string(c.Status), string(next))
	}

	c.Status = next
	if next == StatusResolved {
		if resolution != "" {
			c.Resolution = &resolution
		}

		if c.ResolvedAt == nil {
			resolvedAt := at
			c.ResolvedAt = &resolvedAt
		}
	}

	c.UpdatedAt = at
	return nil
}

// AssignTo assigns complaint to employee, only the first assignment is timestamped
func (c *Complaint) AssignTo(employeeID string, at time.Time) {
	c.AssignedTo = &employeeID
	if c.AssignedAt == nil {
		assignedAt := at
		c.AssignedAt = &assignedAt
	}

	if c.Status == StatusPending {
		c.Status = StatusInProgress
	}

	c.UpdatedAt = at
}

// AddNote appends note to complaint
func (c *Complaint) AddNote(text, authorID string, isPublic bool, at time.Time) {
	c.Notes = append(c.Notes, Note{
		Text:     text,
		AddedBy:  authorID,
		AddedAt:  at,
		IsPublic: isPublic,
	})
	c.UpdatedAt = at
}

// TrackEmail appends email attempt outcome to complaint email history
func (c *Complaint) TrackEmail(tp EmailType, res EmailRecord) {
	res.Type = tp
	c.EmailsSent = append(c.EmailsSent, res)
	if tp == EmailTypeConfirmation && res.Status != EmailStatusFailed {
		c.ConfirmationEmailSent = true
	}
	c.UpdatedAt = res.SentAt
}

// PublicView returns copy of complaint safe to show to customer
func (c *Complaint) PublicView() *Complaint {
	cp := *c
	cp.Notes = make([]Note, 0)
	for _, n := range c.Notes {
		if n.IsPublic {
			cp.Notes = append(cp.Notes, n)
		}
	}
	cp.EmailsSent = nil
	cp.AssignedTo = nil
	return &cp
}

// ComplaintSubmission is data provided by customer to submit complaint
type ComplaintSubmission struct {
	Name      string   `json:"name" validate:"required,min=2,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Contact   *string  `json:"contact" validate:"omitempty,contact"`
	Company   *string  `json:"company" validate:"omitempty,max=200"`
	Category  Category `json:"category" validate:"required,complaint_category"`
	Complaint string   `json:"complaint" validate:"required,min=10,max=2000"`
	Priority  Priority `json:"priority" validate:"omitempty,priority"`
}

// SubmissionResult is outcome of complaint submission
type SubmissionResult struct {
	Reference string `json:"reference"`
	Status    Status `json:"status"`
	EmailSent bool   `json:"emailSent"`
}

// ComplaintFilter narrows complaints lookup, zero values are ignored.
// Found complaints are ordered from the newest to the oldest.
type ComplaintFilter struct {
	Statuses        []Status
	Priorities      []Priority
	AssignedTo      string
	Category        Category
	Email           string
	Reference       string
	CreatedNotAfter *time.Time
	Limit           int64
	Offset          int64
}

// OverdueFilters returns filters which together match all complaints overdue at the moment now
func OverdueFilters(now time.Time) []*ComplaintFilter {
	open := []Status{StatusPending, StatusInProgress}
	groups := [][]Priority{
		{PriorityHigh, PriorityCritical},
		{PriorityLow, PriorityMedium},
	}

	filters := make([]*ComplaintFilter, 0, len(groups))
	for _, g := range groups {
		// age in full days must exceed the limit, so complaint must be at least limit+1 days old
		notAfter := now.Add(-time.Duration(g[0].OverdueAfterDays()+1) * hoursPerDay * time.Hour)
		filters = append(filters, &ComplaintFilter{
			Statuses:        open,
			Priorities:      g,
			CreatedNotAfter: &notAfter,
		})
	}
	return filters
}

// ComplaintStatistics is aggregated complaints state
type ComplaintStatistics struct {
	Total      int64        `json:"total"`
	Pending    int64        `json:"pending"`
	InProgress int64        `json:"inProgress"`
	Resolved   int64        `json:"resolved"`
	Closed     int64        `json:"closed"`
	Overdue    int64        `json:"overdue"`
	Recent     []*Complaint `json:"recent"`
}
