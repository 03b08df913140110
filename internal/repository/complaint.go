package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/pkg/db/transactor"
)

const complaintColumns = `id, name, email, contact, company, category, complaint, reference, status, priority,
	assigned_to, assigned_at, resolution, resolved_at, confirmation_email_sent, emails_sent, notes,
	date, updated_at, version`

// ComplaintRepository stores complaints. Update compares version of the passed complaint with the stored one
// and fails with ConcurrentModificationErr if they differ, version is incremented on success.
type ComplaintRepository interface {
	FindByID(context.Context, string) (*model.Complaint, error)
	FindByReference(context.Context, string) (*model.Complaint, error)
	Find(context.Context, *model.ComplaintFilter) ([]*model.Complaint, error)
	Count(context.Context, *model.ComplaintFilter) (int64, error)
	Create(context.Context, *model.Complaint) error
	Update(context.Context, *model.Complaint) error
}

type postgresComplaintRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresComplaintRepository builds postgres ComplaintRepository
func NewPostgresComplaintRepository(trx transactor.PgxWithinTransactionExecutor) ComplaintRepository {
	return &postgresComplaintRepository{trx: trx}
}

func (r *postgresComplaintRepository) FindByID(ctx context.Context, id string) (*model.Complaint, error) {
	q := fmt.Sprintf("SELECT %s FROM complaints WHERE id = $1", complaintColumns)
	return r.findOne(ctx, q, id)
}

func (r *postgresComplaintRepository) FindByReference(ctx context.Context, ref string) (*model.Complaint, error) {
	q := fmt.Sprintf("SELECT %s FROM complaints WHERE reference = $1", complaintColumns)
	return r.findOne(ctx, q, ref)
}

func (r *postgresComplaintRepository) Find(ctx context.Context, f *model.ComplaintFilter) ([]*model.Complaint, error) {
	where, args := complaintWhere(f)
	q := fmt.Sprintf("SELECT %s FROM complaints%s ORDER BY date DESC", complaintColumns, where)

	if f != nil && f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	if f != nil && f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.trx.Executor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := make([]*model.Complaint, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *postgresComplaintRepository) Count(ctx context.Context, f *model.ComplaintFilter) (int64, error) {
	where, args := complaintWhere(f)
	q := "SELECT COUNT(*) FROM complaints" + where

	var count int64
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresComplaintRepository) Create(ctx context.Context, c *model.Complaint) error {
	emails, notes, err := complaintJSONB(c)
	if err != nil {
		return err
	}

	q := fmt.Sprintf(`INSERT INTO complaints(%s)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`, complaintColumns)

	_, err = r.trx.Executor(ctx).Exec(ctx, q,
		c.ID, c.Name, c.Email, c.Contact, c.Company, string(c.Category), c.Text, c.Reference, string(c.Status),
		string(c.Priority), c.AssignedTo, c.AssignedAt, c.Resolution, c.ResolvedAt, c.ConfirmationEmailSent,
		&emails, &notes, c.CreatedAt, c.UpdatedAt, c.Version,
	)
	if err != nil {
		return duplicateOr(err)
	}
	return nil
}

func (r *postgresComplaintRepository) Update(ctx context.Context, c *model.Complaint) error {
	emails, notes, err := complaintJSONB(c)
	if err != nil {
		return err
	}

	q := `UPDATE complaints SET name = $1, email = $2, contact = $3, company = $4, category = $5, complaint = $6,
		status = $7, priority = $8, assigned_to = $9, assigned_at = $10, resolution = $11, resolved_at = $12,
		confirmation_email_sent = $13, emails_sent = $14, notes = $15, updated_at = $16, version = version + 1
		WHERE id = $17 AND version = $18`

	comm, err := r.trx.Executor(ctx).Exec(ctx, q,
		c.Name, c.Email, c.Contact, c.Company, string(c.Category), c.Text, string(c.Status), string(c.Priority),
		c.AssignedTo, c.AssignedAt, c.Resolution, c.ResolvedAt, c.ConfirmationEmailSent, &emails, &notes,
		c.UpdatedAt, c.ID, c.Version,
	)
	if err != nil {
		return err
	}

	if comm.RowsAffected() == 0 {
		return concurrentComplaintModification(c.ID)
	}

	c.Version++
	return nil
}

func (r *postgresComplaintRepository) findOne(ctx context.Context, q string, args ...any) (*model.Complaint, error) {
	c, err := r.scan(r.trx.Executor(ctx).QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresComplaintRepository) scan(row pgx.Row) (*model.Complaint, error) {
	var c model.Complaint
	var emails, notes pgtype.JSONB

	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Contact, &c.Company, &c.Category, &c.Text, &c.Reference, &c.Status,
		&c.Priority, &c.AssignedTo, &c.AssignedAt, &c.Resolution, &c.ResolvedAt, &c.ConfirmationEmailSent,
		&emails, &notes, &c.CreatedAt, &c.UpdatedAt, &c.Version,
	)
	if err != nil {
		return nil, err
	}

	c.EmailsSent = make([]model.EmailRecord, 0)
	if err := emails.AssignTo(&c.EmailsSent); err != nil {
		return nil, fmt.Errorf("failed to decode emails of complaint %s - %w", c.ID, err)
	}

	c.Notes = make([]model.Note, 0)
	if err := notes.AssignTo(&c.Notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes of complaint %s - %w", c.ID, err)
	}

	return &c, nil
}

func complaintJSONB(c *model.Complaint) (pgtype.JSONB, pgtype.JSONB, error) {
	var emails, notes pgtype.JSONB

	emailsSent := c.EmailsSent
	if emailsSent == nil {
		emailsSent = make([]model.EmailRecord, 0)
	}

	if err := emails.Set(emailsSent); err != nil {
		return emails, notes, fmt.Errorf("failed to encode emails of complaint %s - %w", c.ID, err)
	}

	complaintNotes := c.Notes
	if complaintNotes == nil {
		complaintNotes = make([]model.Note, 0)
	}

	if err := notes.Set(complaintNotes); err != nil {
		return emails, notes, fmt.Errorf("failed to encode notes of complaint %s - %w", c.ID, err)
	}

	return emails, notes, nil
}

func complaintWhere(f *model.ComplaintFilter) (string, []any) {
	if f == nil {
		return "", nil
	}

	conds := make([]string, 0)
	args := make([]any, 0)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		add("status = ANY($%d)", statuses)
	}

	if len(f.Priorities) > 0 {
		priorities := make([]string, 0, len(f.Priorities))
		for _, p := range f.Priorities {
			priorities = append(priorities, string(p))
		}
		add("priority = ANY($%d)", priorities)
	}

	if f.AssignedTo != "" {
		add("assigned_to = $%d", f.AssignedTo)
	}

	if f.Category != "" {
		add("category = $%d", string(f.Category))
	}

	if f.Email != "" {
		add("email = $%d", f.Email)
	}

	if f.Reference != "" {
		add("reference = $%d", f.Reference)
	}

	if f.CreatedNotAfter != nil {
		add("date <= $%d", *f.CreatedNotAfter)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func concurrentComplaintModification(id string) error {
	return apperrors.NewConcurrentModificationErr(fmt.Sprintf("complaint %s was modified by another request, please reload it and try again", id))
}
