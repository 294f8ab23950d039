package printing

const (
	templateProposal = "proposal"
	templateInvoice  = "invoice"
)

const proposalTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 0; }
  h1 { font-size: 20px; text-align: center; letter-spacing: 1px; }
  h2 { font-size: 16px; text-decoration: underline; }
  h3 { font-size: 12px; text-decoration: underline; margin-bottom: 6px; }
  p, li { font-size: 11px; line-height: 1.5; }
  .client p { margin: 2px 0; font-size: 12px; }
  .terms p { font-size: 9px; margin: 2px 0; }
  .footer { margin-top: 40px; text-align: center; font-size: 10px; color: #555; }
</style>
</head>
<body>
  <h1>STATEMENT OF WORK</h1>

  <div class="client">
    <p>Client: {{.ClientName}}</p>
    <p>Company: {{.ClientCompany}}</p>
    <p>Email: {{.ClientEmail}}</p>
  </div>

  <h2>{{.Title}}</h2>

  <h3>Project Scope:</h3>
  <p>{{.Scope}}</p>

  <h3>Pricing Details:</h3>
  <p>Tier: {{.PricingTier}}</p>
  <p>Total Amount: ${{.TotalAmount}}</p>

  <div class="terms">
    <h3>Terms &amp; Conditions:</h3>
    <p>1. Payment terms: Net 30 days from invoice date</p>
    <p>2. All work is subject to change order approval</p>
    <p>3. Client is responsible for providing necessary materials and access</p>
    <p>4. Any additional work beyond scope will be billed separately</p>
  </div>

  <div class="footer">
    <p>Generated on: {{.GeneratedOn}}</p>
    <p>&copy; 2025 LabWorks - All Rights Reserved</p>
  </div>
</body>
</html>`

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 0; }
  h1 { font-size: 24px; text-align: center; letter-spacing: 2px; }
  h3 { font-size: 14px; text-decoration: underline; margin-bottom: 6px; }
  p { font-size: 12px; margin: 2px 0; }
  .breakdown p { font-size: 10px; }
  .total { font-size: 16px; font-weight: bold; text-align: right; margin-top: 16px; }
  .terms p { font-size: 10px; }
  .footer { margin-top: 40px; text-align: center; font-size: 9px; color: #555; }
</style>
</head>
<body>
  <h1>INVOICE</h1>

  <p>Invoice Number: {{.InvoiceNumber}}</p>
  <p>Issue Date: {{.IssueDate}}</p>
  <p>Due Date: {{.DueDate}}</p>

  <h3>Bill To:</h3>
  <p>{{.ClientName}}</p>
  {{if .ClientCompany}}<p>{{.ClientCompany}}</p>{{end}}
  {{if .ClientEmail}}<p>{{.ClientEmail}}</p>{{end}}

  {{if .ProjectName}}<p>Project: {{.ProjectName}}</p>{{end}}

  {{if .Lines}}
  <div class="breakdown">
    <h3>Time Breakdown:</h3>
    {{range .Lines}}
    {{if .Billable}}<p>{{.Date}} - {{.Description}}: {{.Hours}} hrs @ ${{.Rate}}/hr = ${{.Amount}}</p>
    {{else}}<p>{{.Date}} - {{.Description}}: {{.Hours}} hrs (unbilled)</p>{{end}}
    {{end}}
  </div>
  {{end}}

  <p class="total">Total Amount: ${{.TotalAmount}}</p>

  <div class="terms">
    <p>Payment Terms: Net 30 days</p>
    <p>Please make payment to: LabWorks Agency</p>
  </div>

  <div class="footer">
    <p>Generated on: {{.GeneratedOn}}</p>
    <p>&copy; 2025 LabWorks - All Rights Reserved</p>
  </div>
</body>
</html>`
