package usecases

import (
	"context"

	"github.com/ukaji3/reportfill-go/internal/mail"
	"github.com/ukaji3/reportfill-go/pkg/reportfill"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
)

// ReportUseCase serves the template grid and turns submissions into filled
// workbooks, optionally mailing them.
type ReportUseCase struct {
	TemplatePath string
	Options      reportfill.Options
	Dispatcher   *mail.Dispatcher
}

func NewReportUseCase(templatePath string, opts reportfill.Options, dispatcher *mail.Dispatcher) *ReportUseCase {
	return &ReportUseCase{
		TemplatePath: templatePath,
		Options:      opts,
		Dispatcher:   dispatcher,
	}
}

// Grid returns the template as an editor grid.
func (u *ReportUseCase) Grid(_ context.Context) (*models.Workbook, error) {
	return reportfill.Grid(u.TemplatePath, u.Options)
}

// Export fills a fresh copy of the template with cells.
func (u *ReportUseCase) Export(ctx context.Context, cells []models.CellEdit) (*reportfill.Result, error) {
	return reportfill.Fill(ctx, u.TemplatePath, cells, u.Options)
}

// Email fills the template and mails the result to sub.Recipient.
func (u *ReportUseCase) Email(ctx context.Context, sub models.Submission) (*reportfill.Result, error) {
	res, err := u.Export(ctx, sub.Cells)
	if err != nil {
		return nil, err
	}

	if err := u.Dispatcher.Dispatch(ctx, res.Data, res.Filename, sub.Recipient, sub.Subject, sub.Body); err != nil {
		return nil, err
	}
	return res, nil
}
