package usecase

import (
	"context"

	"task-intelligence/internal/analysis"
)

// ParseDate extracts a due date from Vietnamese free text.
func (uc *implUseCase) ParseDate(ctx context.Context, input analysis.ParseDateInput) (analysis.ParseDateOutput, error) {
	if input.Text == "" {
		return analysis.ParseDateOutput{}, analysis.ErrEmptyText
	}

	base, err := uc.resolveNow(input.Base)
	if err != nil {
		uc.l.Warnf(ctx, "ParseDate: bad base date %q", input.Base)
		return analysis.ParseDateOutput{}, err
	}

	result := uc.dateMath.Parse(input.Text, base)
	if result == nil {
		uc.l.Debugf(ctx, "ParseDate: no date in %q", input.Text)
		return analysis.ParseDateOutput{}, nil
	}

	uc.l.Infof(ctx, "ParseDate: %q -> %s via %s", input.Text, result.Date.Format("2006-01-02"), result.Detected)

	return analysis.ParseDateOutput{Date: toParsedDate(result)}, nil
}
