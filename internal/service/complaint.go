package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/crm/internal/cache"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/metrics"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/notification"
	"github.com/umalmyha/crm/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	referenceAttempts = 5
	recentComplaints  = 5
)

// Validator validates payloads according to their validate tags
type Validator interface {
	Validate(any) error
}

// ComplaintService drives complaint lifecycle: submission, status changes, assignment, notes and statistics
type ComplaintService interface {
	Submit(context.Context, *model.ComplaintSubmission) (*model.SubmissionResult, error)
	TransitionStatus(ctx context.Context, id string, status model.Status, resolution string) (*model.Complaint, error)
	Assign(ctx context.Context, id string, employeeID string) (*model.Complaint, error)
	AddNote(ctx context.Context, id string, text string, authorID string, isPublic bool) (*model.Complaint, error)
	Statistics(context.Context) (*model.ComplaintStatistics, error)
	FindByID(context.Context, string) (*model.Complaint, error)
	Track(context.Context, string) (*model.Complaint, error)
	Find(ctx context.Context, filter *model.ComplaintFilter, assignedEmail string) ([]*model.Complaint, error)
}

type complaintService struct {
	validator      Validator
	refGenerator   ReferenceGenerator
	complaintRepo  repository.ComplaintRepository
	employeeRepo   repository.EmployeeRepository
	complaintCache cache.ComplaintCache
	sender         notification.Sender
	composer       *notification.Composer
	logger         logrus.FieldLogger
	now            func() time.Time
}

// NewComplaintService builds ComplaintService
func NewComplaintService(
	validator Validator,
	refGenerator ReferenceGenerator,
	complaintRepo repository.ComplaintRepository,
	employeeRepo repository.EmployeeRepository,
	complaintCache cache.ComplaintCache,
	sender notification.Sender,
	composer *notification.Composer,
	logger logrus.FieldLogger,
) ComplaintService {
	return &complaintService{
		validator:      validator,
		refGenerator:   refGenerator,
		complaintRepo:  complaintRepo,
		employeeRepo:   employeeRepo,
		complaintCache: complaintCache,
		sender:         sender,
		composer:       composer,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *complaintService) Submit(ctx context.Context, sub *model.ComplaintSubmission) (*model.SubmissionResult, error) {
	sub = normalizeSubmission(sub)
	if err := s.validator.Validate(sub); err != nil {
		return nil, err
	}

	now := s.now()
	c := &model.Complaint{
		ID:         uuid.NewString(),
		Name:       sub.Name,
		Email:      sub.Email,
		Contact:    sub.Contact,
		Company:    sub.Company,
		Category:   sub.Category,
		Text:       sub.Complaint,
		Status:     model.StatusPending,
		Priority:   sub.Priority,
		Notes:      make([]model.Note, 0),
		EmailsSent: make([]model.EmailRecord, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}

	if c.Priority == "" {
		c.Priority = model.PriorityMedium
	}

	if err := s.create(ctx, c); err != nil {
		return nil, err
	}
	metrics.ComplaintSubmitted(c.Category)

	rec := s.notify(ctx, model.EmailTypeConfirmation, c)
	if err := s.complaintRepo.Update(ctx, c); err != nil {
		s.logger.WithError(err).WithField("reference", c.Reference).Error("failed to store confirmation email outcome")
	}

	return &model.SubmissionResult{
		Reference: c.Reference,
		Status:    c.Status,
		EmailSent: rec.Status != model.EmailStatusFailed,
	}, nil
}

// create generates reference for complaint and stores it, collision is checked before insert
// and unique constraint violation on insert is treated as collision as well
func (s *complaintService) create(ctx context.Context, c *model.Complaint) error {
	for i := 0; i < referenceAttempts; i++ {
		ref := s.refGenerator.Generate(s.now())

		taken, err := s.complaintRepo.Count(ctx, &model.ComplaintFilter{Reference: ref})
		if err != nil {
			return fmt.Errorf("failed to check complaint reference %s - %w", ref, err)
		}

		if taken > 0 {
			metrics.ReferenceCollision()
			continue
		}

		c.Reference = ref
		if err := s.complaintRepo.Create(ctx, c); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				metrics.ReferenceCollision()
				continue
			}
			return fmt.Errorf("failed to create complaint - %w", err)
		}
		return nil
	}

	c.Reference = ""
	return apperrors.NewReferenceExhaustedErr(referenceAttempts)
}

func (s *complaintService) TransitionStatus(ctx context.Context, id string, status model.Status, resolution string) (*model.Complaint, error) {
	c, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := c.Status
	if err := c.TransitionTo(status, strings.TrimSpace(resolution), s.now()); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	metrics.StatusChanged(prev, status)

	tp := model.EmailTypeUpdate
	if status == model.StatusResolved {
		tp = model.EmailTypeResolution
	}

	s.notify(ctx, tp, c)
	if err := s.save(ctx, c); err != nil {
		s.logger.WithError(err).WithField("reference", c.Reference).Errorf("failed to store %s email outcome", tp)
	}
	return c, nil
}

func (s *complaintService) Assign(ctx context.Context, id string, employeeID string) (*model.Complaint, error) {
	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if empl == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("employee %s doesn't exist", employeeID))
	}

	c, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := c.Status
	c.AssignTo(empl.ID, s.now())

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	if prev != c.Status {
		metrics.StatusChanged(prev, c.Status)
	}
	return c, nil
}

func (s *complaintService) AddNote(ctx context.Context, id string, text string, authorID string, isPublic bool) (*model.Complaint, error) {
	c, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.AddNote(strings.TrimSpace(text), authorID, isPublic, s.now())

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complaintService) Statistics(ctx context.Context) (*model.ComplaintStatistics, error) {
	stats := &model.ComplaintStatistics{}

	g, gCtx := errgroup.WithContext(ctx)

	counters := []struct {
		dst    *int64
		filter *model.ComplaintFilter
	}{
		{dst: &stats.Total, filter: &model.ComplaintFilter{}},
		{dst: &stats.Pending, filter: &model.ComplaintFilter{Statuses: []model.Status{model.StatusPending}}},
		{dst: &stats.InProgress, filter: &model.ComplaintFilter{Statuses: []model.Status{model.StatusInProgress}}},
		{dst: &stats.Resolved, filter: &model.ComplaintFilter{Statuses: []model.Status{model.StatusResolved}}},
	}

	for _, cnt := range counters {
		cnt := cnt
		g.Go(func() error {
			n, err := s.complaintRepo.Count(gCtx, cnt.filter)
			if err != nil {
				return err
			}
			*cnt.dst = n
			return nil
		})
	}

	overdueFilters := model.OverdueFilters(s.now())
	overdue := make([]int64, len(overdueFilters))
	for i, f := range overdueFilters {
		i, f := i, f
		g.Go(func() error {
			n, err := s.complaintRepo.Count(gCtx, f)
			if err != nil {
				return err
			}
			overdue[i] = n
			return nil
		})
	}

	g.Go(func() error {
		recent, err := s.complaintRepo.Find(gCtx, &model.ComplaintFilter{Limit: recentComplaints})
		if err != nil {
			return err
		}
		stats.Recent = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect complaint statistics - %w", err)
	}

	for _, n := range overdue {
		stats.Overdue += n
	}

	stats.Closed = stats.Total - stats.Pending - stats.InProgress - stats.Resolved
	if stats.Closed < 0 {
		stats.Closed = 0
	}

	if stats.Recent == nil {
		stats.Recent = make([]*model.Complaint, 0)
	}
	return stats, nil
}

func (s *complaintService) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	return s.findByID(ctx, id)
}

func (s *complaintService) Track(ctx context.Context, ref string) (*model.Complaint, error) {
	logger := s.logger.WithField("reference", ref)

	cached, err := s.complaintCache.FindByReference(ctx, ref)
	if err != nil {
		logger.WithError(err).Warn("failed to read complaint from cache")
	}

	if cached != nil {
		return cached.PublicView(), nil
	}

	c, err := s.complaintRepo.FindByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("complaint with reference %s doesn't exist", ref))
	}

	if err := s.complaintCache.Cache(ctx, c); err != nil {
		logger.WithError(err).Warn("failed to cache complaint")
	}
	return c.PublicView(), nil
}

func (s *complaintService) Find(ctx context.Context, filter *model.ComplaintFilter, assignedEmail string) ([]*model.Complaint, error) {
	if filter == nil {
		filter = &model.ComplaintFilter{}
	}

	if assignedEmail != "" {
		empl, err := s.employeeRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(assignedEmail)))
		if err != nil {
			return nil, err
		}

		if empl == nil {
			return make([]*model.Complaint, 0), nil
		}
		filter.AssignedTo = empl.ID
	}

	if filter.Email != "" {
		filter.Email = strings.ToLower(strings.TrimSpace(filter.Email))
	}

	return s.complaintRepo.Find(ctx, filter)
}

func (s *complaintService) findByID(ctx context.Context, id string) (*model.Complaint, error) {
	c, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("complaint %s doesn't exist", id))
	}
	return c, nil
}

func (s *complaintService) save(ctx context.Context, c *model.Complaint) error {
	if err := s.complaintRepo.Update(ctx, c); err != nil {
		return err
	}

	if err := s.complaintCache.EvictByReference(ctx, c.Reference); err != nil {
		s.logger.WithError(err).WithField("reference", c.Reference).Warn("failed to evict complaint from cache")
	}
	return nil
}

// notify sends email of type tp and tracks outcome on complaint, outcome isn't persisted
func (s *complaintService) notify(ctx context.Context, tp model.EmailType, c *model.Complaint) model.EmailRecord {
	logger := s.logger.WithFields(logrus.Fields{"reference": c.Reference, "emailType": tp})
	rec := model.EmailRecord{Status: model.EmailStatusSent}

	msg, err := s.composer.ComplaintMessage(tp, c)
	if err != nil {
		rec.Status = model.EmailStatusFailed
		rec.Error = err.Error()
	} else {
		res := s.sender.Send(ctx, msg)
		rec.MessageID = res.MessageID
		if !res.Success {
			rec.Status = model.EmailStatusFailed
			rec.Error = res.Error
		}
	}

	rec.SentAt = s.now()
	c.TrackEmail(tp, rec)
	metrics.EmailAttempted(tp, rec.Status)

	if rec.Status == model.EmailStatusFailed {
		logger.WithField("error", rec.Error).Warn("failed to send complaint email")
	} else {
		logger.WithField("messageId", rec.MessageID).Info("complaint email sent")
	}
	return rec
}

func normalizeSubmission(sub *model.ComplaintSubmission) *model.ComplaintSubmission {
	n := *sub
	n.Name = strings.TrimSpace(n.Name)
	n.Email = strings.ToLower(strings.TrimSpace(n.Email))
	n.Complaint = strings.TrimSpace(n.Complaint)
	n.Contact = trimmedOrNil(n.Contact)
	n.Company = trimmedOrNil(n.Company)
	return &n
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
