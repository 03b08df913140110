package notification

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/umalmyha/crm/internal/model"
)

const (
	notProvided = "N/A"
	dateLayout  = "January 2, 2006 at 03:04 PM"
)

//go:embed templates
var templatesFS embed.FS

var subjects = map[model.EmailType]string{
	model.EmailTypeConfirmation: "Complaint Received - Thank You for Reaching Out",
	model.EmailTypeUpdate:       "Complaint %s - Status Update",
	model.EmailTypeResolution:   "Complaint %s - Resolved",
}

type complaintView struct {
	Name         string
	Company      string
	Category     string
	Contact      string
	Date         string
	Reference    string
	Status       string
	Resolution   string
	SupportName  string
	SupportEmail string
	SupportPhone string
}

// Composer renders complaint emails from embedded templates
type Composer struct {
	from         From
	supportPhone string
	html         *htmltemplate.Template
	text         *texttemplate.Template
}

// NewComposer parses templates and builds Composer
func NewComposer(from From, supportPhone string) (*Composer, error) {
	html, err := htmltemplate.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html email templates - %w", err)
	}

	text, err := texttemplate.ParseFS(templatesFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text email templates - %w", err)
	}

	return &Composer{
		from:         from,
		supportPhone: supportPhone,
		html:         html,
		text:         text,
	}, nil
}

// ComplaintMessage renders email of type tp about complaint c
func (cm *Composer) ComplaintMessage(tp model.EmailType, c *model.Complaint) (*Message, error) {
	subject, ok := subjects[tp]
	if !ok {
		return nil, fmt.Errorf("unknown email type %s", tp)
	}

	if tp != model.EmailTypeConfirmation {
		subject = fmt.Sprintf(subject, c.Reference)
	}

	view := cm.view(c)
	name := string(tp)

	var htmlBuf, textBuf bytes.Buffer
	if err := cm.html.ExecuteTemplate(&htmlBuf, name+".html", view); err != nil {
		return nil, fmt.Errorf("failed to render %s html email - %w", tp, err)
	}

	if err := cm.text.ExecuteTemplate(&textBuf, name+".txt", view); err != nil {
		return nil, fmt.Errorf("failed to render %s text email - %w", tp, err)
	}

	return &Message{
		To:      c.Email,
		ToName:  c.Name,
		Subject: subject,
		Text:    textBuf.String(),
		HTML:    htmlBuf.String(),
	}, nil
}

// PlainMessage builds email from free text body, line breaks are kept in html part
func (cm *Composer) PlainMessage(to, subject, body string) (*Message, error) {
	var htmlBuf bytes.Buffer
	data := struct{ Lines []string }{Lines: strings.Split(body, "\n")}
	if err := cm.html.ExecuteTemplate(&htmlBuf, "plain.html", data); err != nil {
		return nil, fmt.Errorf("failed to render plain html email - %w", err)
	}

	return &Message{
		To:      to,
		Subject: subject,
		Text:    body,
		HTML:    htmlBuf.String(),
	}, nil
}

func (cm *Composer) view(c *model.Complaint) *complaintView {
	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	category := string(c.Category)
	if category == "" {
		category = string(model.CategoryGeneral)
	}

	return &complaintView{
		Name:         orNotProvided(&c.Name),
		Company:      orNotProvided(c.Company),
		Category:     category,
		Contact:      orNotProvided(c.Contact),
		Date:         created.Format(dateLayout),
		Reference:    c.Reference,
		Status:       string(c.Status),
		Resolution:   valueOrEmpty(c.Resolution),
		SupportName:  cm.from.Name,
		SupportEmail: cm.from.Email,
		SupportPhone: cm.supportPhone,
	}
}

func orNotProvided(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return notProvided
	}
	return *s
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
