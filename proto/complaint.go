package proto

// SubmitComplaintRequest is anonymous complaint submission
type SubmitComplaintRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Contact   *string `json:"contact,omitempty"`
	Company   *string `json:"company,omitempty"`
	Category  string  `json:"category"`
	Complaint string  `json:"complaint"`
	Priority  string  `json:"priority,omitempty"`
}

// SubmitComplaintResponse is outcome of submission
type SubmitComplaintResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	EmailSent bool   `json:"emailSent"`
}

// TransitionStatusRequest moves complaint to another status
type TransitionStatusRequest struct {
	Id         string `json:"id" validate:"required,uuid"`
	Status     string `json:"status" validate:"required,complaint_status"`
	Resolution string `json:"resolution" validate:"max=1000"`
}

// AssignRequest assigns complaint to employee
type AssignRequest struct {
	Id         string `json:"id" validate:"required,uuid"`
	EmployeeId string `json:"employeeId" validate:"required,uuid"`
}

// AddNoteRequest appends note to complaint
type AddNoteRequest struct {
	Id       string `json:"id" validate:"required,uuid"`
	Note     string `json:"note" validate:"required,max=500"`
	IsPublic bool   `json:"isPublic"`
}

// Note is complaint note
type Note struct {
	Note     string `json:"note"`
	AddedBy  string `json:"addedBy"`
	AddedAt  string `json:"addedAt"`
	IsPublic bool   `json:"isPublic"`
}

// ComplaintResponse is complaint state, timestamps are RFC 3339 strings
type ComplaintResponse struct {
	Id                    string  `json:"id"`
	Reference             string  `json:"reference"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Contact               *string `json:"contact,omitempty"`
	Company               *string `json:"company,omitempty"`
	Category              string  `json:"category"`
	Complaint             string  `json:"complaint"`
	Status                string  `json:"status"`
	Priority              string  `json:"priority"`
	AssignedTo            *string `json:"assignedTo,omitempty"`
	AssignedAt            *string `json:"assignedAt,omitempty"`
	Resolution            *string `json:"resolution,omitempty"`
	ResolvedAt            *string `json:"resolvedAt,omitempty"`
	ConfirmationEmailSent bool    `json:"confirmationEmailSent"`
	Notes                 []*Note `json:"notes"`
	Date                  string  `json:"date"`
	UpdatedAt             string  `json:"updatedAt"`
	Version               int64   `json:"version"`
}

// StatisticsResponse is aggregated complaints state
type StatisticsResponse struct {
	Total      int64                `json:"total"`
	Pending    int64                `json:"pending"`
	InProgress int64                `json:"inProgress"`
	Resolved   int64                `json:"resolved"`
	Closed     int64                `json:"closed"`
	Overdue    int64                `json:"overdue"`
	Recent     []*ComplaintResponse `json:"recent"`
}
