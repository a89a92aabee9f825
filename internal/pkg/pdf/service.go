// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/warehouse-backend/internal/config"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// MovementReportRow is a single ledger line on the report
type MovementReportRow struct {
	CreatedAt       time.Time
	ProductName     string
	Barcode         string
	MovementType    string
	Reason          string
	Quantity        int
	PreviousStock   int
	CurrentStock    int
	ReferenceNumber string
	CreatedByName   string
}

// MovementReportData represents the data passed to the report template
type MovementReportData struct {
	ReportNumber string
	GeneratedAt  string
	PeriodFrom   string
	PeriodTo     string
	Rows         []MovementReportRow
	TotalIn      int
	TotalOut     int
	TotalReturn  int
	Company      CompanyInfo
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// GenerateMovementReport renders the stock movement history as a PDF
func (s *Service) GenerateMovementReport(rows []MovementReportRow, from, to *time.Time) (*bytes.Buffer, error) {
	data := MovementReportData{
		ReportNumber: fmt.Sprintf("MOV-%s", time.Now().UTC().Format("20060102-150405")),
		GeneratedAt:  time.Now().Format("January 2, 2006 15:04"),
		Rows:         rows,
		Company: CompanyInfo{
			Name:    s.config.App.CompanyName,
			Address: s.config.App.CompanyAddress,
			Phone:   s.config.App.CompanyPhone,
			Email:   s.config.App.CompanyEmail,
		},
	}

	if from != nil {
		data.PeriodFrom = from.Format("January 2, 2006")
	}
	if to != nil {
		data.PeriodTo = to.Format("January 2, 2006")
	}

	for _, row := range rows {
		switch row.MovementType {
		case "stock_in":
			data.TotalIn += row.Quantity
		case "stock_out":
			data.TotalOut += row.Quantity
		case "stock_return":
			data.TotalReturn += row.Quantity
		}
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationLandscape)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data MovementReportData) (string, error) {
	tmpl := template.Must(template.New("movement-report").Parse(movementReportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// Movement report HTML template
const movementReportTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Stock Movement Report {{.ReportNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .company-info {
            flex: 1;
        }
        .report-info {
            text-align: right;
            flex: 1;
        }
        .report-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .movements-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
            font-size: 12px;
        }
        .movements-table th,
        .movements-table td {
            border: 1px solid #ddd;
            padding: 8px 6px;
            text-align: left;
        }
        .movements-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .movements-table .num-col {
            text-align: right;
            width: 60px;
        }
        .type-badge {
            display: inline-block;
            padding: 2px 6px;
            border-radius: 4px;
            font-size: 11px;
            font-weight: bold;
            text-transform: uppercase;
        }
        .type-stock_in {
            background-color: #dcfce7;
            color: #166534;
        }
        .type-stock_out {
            background-color: #fee2e2;
            color: #991b1b;
        }
        .type-stock_return {
            background-color: #dbeafe;
            color: #1e40af;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            {{if .Company.Address}}<p>{{.Company.Address}}</p>{{end}}
            {{if .Company.Phone}}<p>Phone: {{.Company.Phone}}</p>{{end}}
            {{if .Company.Email}}<p>Email: {{.Company.Email}}</p>{{end}}
        </div>
        <div class="report-info">
            <div class="report-title">STOCK MOVEMENT REPORT</div>
            <p><strong>Report #:</strong> {{.ReportNumber}}</p>
            <p><strong>Generated:</strong> {{.GeneratedAt}}</p>
            {{if .PeriodFrom}}<p><strong>From:</strong> {{.PeriodFrom}}</p>{{end}}
            {{if .PeriodTo}}<p><strong>To:</strong> {{.PeriodTo}}</p>{{end}}
        </div>
    </div>

    <table class="movements-table">
        <thead>
            <tr>
                <th>Date</th>
                <th>Product</th>
                <th>Barcode</th>
                <th>Type</th>
                <th>Reason</th>
                <th class="num-col">Qty</th>
                <th class="num-col">Before</th>
                <th class="num-col">After</th>
                <th>Reference</th>
                <th>Recorded By</th>
            </tr>
        </thead>
        <tbody>
            {{range .Rows}}
            <tr>
                <td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
                <td>{{.ProductName}}</td>
                <td>{{.Barcode}}</td>
                <td><span class="type-badge type-{{.MovementType}}">{{.MovementType}}</span></td>
                <td>{{.Reason}}</td>
                <td class="num-col">{{.Quantity}}</td>
                <td class="num-col">{{.PreviousStock}}</td>
                <td class="num-col">{{.CurrentStock}}</td>
                <td>{{.ReferenceNumber}}</td>
                <td>{{.CreatedByName}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Units in:</td>
                <td class="amount">{{.TotalIn}}</td>
            </tr>
            <tr>
                <td class="label">Units out:</td>
                <td class="amount">{{.TotalOut}}</td>
            </tr>
            <tr>
                <td class="label">Units returned:</td>
                <td class="amount">{{.TotalReturn}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>{{len .Rows}} movements listed.</p>
    </div>
</body>
</html>
`
