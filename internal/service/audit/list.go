package audit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// ListResult is one page of audit history.
type ListResult struct {
	Records []domain.AuditRecord `json:"records"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// Get returns a single audit record.
func (s *Service) Get(ctx context.Context, id int64) (domain.AuditRecord, error) {
	if id <= 0 {
		return domain.AuditRecord{}, domain.NewValidationError("id", "must be positive")
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("get audit record: %w", err)
	}
	return rec, nil
}

// List returns audit records matching input, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	if err := input.Validate(); err != nil {
		return ListResult{}, err
	}

	filter := input.filter()
	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list audit records: %w", err)
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}

	return ListResult{
		Records: records,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
