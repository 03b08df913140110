package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
	"github.com/umalmyha/crm/proto"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ComplaintGrpcHandler is gRPC handler for complaint service
type ComplaintGrpcHandler struct {
	proto.UnimplementedComplaintServiceServer
	complaintSvc service.ComplaintService
}

// NewComplaintGrpcHandler builds new ComplaintGrpcHandler
func NewComplaintGrpcHandler(complaintSvc service.ComplaintService) *ComplaintGrpcHandler {
	return &ComplaintGrpcHandler{
		UnimplementedComplaintServiceServer: proto.UnimplementedComplaintServiceServer{},
		complaintSvc:                        complaintSvc,
	}
}

// Submit submits complaint
func (h *ComplaintGrpcHandler) Submit(ctx context.Context, req *proto.SubmitComplaintRequest) (*proto.SubmitComplaintResponse, error) {
	res, err := h.complaintSvc.Submit(ctx, &model.ComplaintSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Contact:   req.Contact,
		Company:   req.Company,
		Category:  model.Category(req.Category),
		Complaint: req.Complaint,
		Priority:  model.Priority(req.Priority),
	})
	if err != nil {
		return nil, err
	}

	return &proto.SubmitComplaintResponse{
		Reference: res.Reference,
		Status:    string(res.Status),
		EmailSent: res.EmailSent,
	}, nil
}

// TransitionStatus changes complaint status
func (h *ComplaintGrpcHandler) TransitionStatus(ctx context.Context, req *proto.TransitionStatusRequest) (*proto.ComplaintResponse, error) {
	c, err := h.complaintSvc.TransitionStatus(ctx, req.Id, model.Status(req.Status), req.Resolution)
	if err != nil {
		return nil, err
	}
	return complaintResponse(c), nil
}

// Assign assigns complaint to employee
func (h *ComplaintGrpcHandler) Assign(ctx context.Context, req *proto.AssignRequest) (*proto.ComplaintResponse, error) {
	c, err := h.complaintSvc.Assign(ctx, req.Id, req.EmployeeId)
	if err != nil {
		return nil, err
	}
	return complaintResponse(c), nil
}

// AddNote adds note authored by caller
func (h *ComplaintGrpcHandler) AddNote(ctx context.Context, req *proto.AddNoteRequest) (*proto.ComplaintResponse, error) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		return nil, echo.ErrUnauthorized
	}

	c, err := h.complaintSvc.AddNote(ctx, req.Id, req.Note, claims.Subject, req.IsPublic)
	if err != nil {
		return nil, err
	}
	return complaintResponse(c), nil
}

// GetStatistics returns complaint statistics
func (h *ComplaintGrpcHandler) GetStatistics(ctx context.Context, _ *emptypb.Empty) (*proto.StatisticsResponse, error) {
	stats, err := h.complaintSvc.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	recent := make([]*proto.ComplaintResponse, 0, len(stats.Recent))
	for _, c := range stats.Recent {
		recent = append(recent, complaintResponse(c))
	}

	return &proto.StatisticsResponse{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		Closed:     stats.Closed,
		Overdue:    stats.Overdue,
		Recent:     recent,
	}, nil
}

func complaintResponse(c *model.Complaint) *proto.ComplaintResponse {
	notes := make([]*proto.Note, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, &proto.Note{
			Note:     n.Text,
			AddedBy:  n.AddedBy,
			AddedAt:  n.AddedAt.Format(time.RFC3339),
			IsPublic: n.IsPublic,
		})
	}

	return &proto.ComplaintResponse{
		Id:                    c.ID,
		Reference:             c.Reference,
		Name:                  c.Name,
		Email:                 c.Email,
		Contact:               c.Contact,
		Company:               c.Company,
		Category:              string(c.Category),
		Complaint:             c.Text,
		Status:                string(c.Status),
		Priority:              string(c.Priority),
		AssignedTo:            c.AssignedTo,
		AssignedAt:            formatTime(c.AssignedAt),
		Resolution:            c.Resolution,
		ResolvedAt:            formatTime(c.ResolvedAt),
		ConfirmationEmailSent: c.ConfirmationEmailSent,
		Notes:                 notes,
		Date:                  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             c.UpdatedAt.Format(time.RFC3339),
		Version:               int64(c.Version),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
