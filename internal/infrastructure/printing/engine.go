package printing

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/labworks/backend/internal/domain/proposal"
	"github.com/labworks/backend/internal/domain/timetracker"
	"github.com/shopspring/decimal"
)

// TemplateEngine renders business documents to HTML for the PDF renderer.
// It uses Go's html/template package with custom formatting functions.
type TemplateEngine struct {
	templates *template.Template
}

// NewTemplateEngine creates a template engine with the built-in document
// templates parsed and ready.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcMap := template.FuncMap{
		"money": formatMoney,
	}

	tmpl := template.New("documents").Funcs(funcMap)
	for name, content := range map[string]string{
		templateProposal: proposalTemplate,
		templateInvoice:  invoiceTemplate,
	} {
		var err error
		tmpl, err = tmpl.New(name).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}

	return &TemplateEngine{templates: tmpl}, nil
}

type proposalView struct {
	Title         string
	ClientName    string
	ClientCompany string
	ClientEmail   string
	Scope         string
	PricingTier   string
	TotalAmount   string
	GeneratedOn   string
}

type invoiceLine struct {
	Date        string
	Description string
	Hours       string
	Rate        string
	Amount      string
	Billable    bool
}

type invoiceView struct {
	InvoiceNumber string
	IssueDate     string
	DueDate       string
	ClientName    string
	ClientCompany string
	ClientEmail   string
	ProjectName   string
	Lines         []invoiceLine
	TotalAmount   string
	GeneratedOn   string
}

// RenderProposal produces the statement-of-work HTML for a proposal document.
func (e *TemplateEngine) RenderProposal(doc *proposal.Document) (string, error) {
	view := proposalView{
		Title:         doc.Title,
		ClientName:    strOr(doc.ClientName, ""),
		ClientCompany: strOr(doc.ClientCompany, "N/A"),
		ClientEmail:   strOr(doc.ClientEmail, "N/A"),
		Scope:         strOr(doc.Scope, "No scope provided"),
		PricingTier:   strOr(doc.PricingTier, "Standard"),
		TotalAmount:   moneyOr(doc.TotalAmount, "0.00"),
		GeneratedOn:   time.Now().Format("1/2/2006"),
	}
	return e.execute(templateProposal, view)
}

// RenderInvoice produces the invoice HTML, including a per-entry time
// breakdown for invoices linked to a project.
func (e *TemplateEngine) RenderInvoice(doc *timetracker.InvoiceDocument, entries []timetracker.TimeEntry) (string, error) {
	view := invoiceView{
		InvoiceNumber: doc.InvoiceNumber,
		IssueDate:     strOr(doc.IssueDate, "N/A"),
		DueDate:       strOr(doc.DueDate, "N/A"),
		ClientName:    strOr(doc.ClientName, ""),
		ClientCompany: strOr(doc.ClientCompany, ""),
		ClientEmail:   strOr(doc.ClientEmail, ""),
		ProjectName:   strOr(doc.ProjectName, ""),
		TotalAmount:   formatMoney(doc.Amount),
		GeneratedOn:   time.Now().Format("1/2/2006"),
	}

	for _, entry := range entries {
		line := invoiceLine{
			Date:        entry.Date,
			Description: strOr(entry.Description, "Work"),
			Hours:       decimal.NewFromFloat(entry.Hours).String(),
		}
		if amount, ok := entry.BilledAmount(); ok {
			line.Billable = true
			line.Rate = decimal.NewFromFloat(*entry.Rate).String()
			line.Amount = amount.StringFixed(2)
		}
		view.Lines = append(view.Lines, line)
	}

	return e.execute(templateInvoice, view)
}

func (e *TemplateEngine) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

func formatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func moneyOr(amount *float64, fallback string) string {
	if amount == nil {
		return fallback
	}
	return formatMoney(*amount)
}
