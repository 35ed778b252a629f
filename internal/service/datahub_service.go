package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "hubsite/internal/errors"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

// DataHubService manages the shared record log.
type DataHubService interface {
	CreateRecord(ctx context.Context, title, content string) (*model.DataHubRecord, error)
	ListRecords(ctx context.Context) ([]model.DataHubRecord, error)
	DeleteRecord(ctx context.Context, id uint) error
}

type dataHubService struct {
	records repository.DataHubRepository
}

// NewDataHubService creates a new datahub service.
func NewDataHubService(records repository.DataHubRepository) DataHubService {
	return &dataHubService{records: records}
}

func (s *dataHubService) CreateRecord(ctx context.Context, title, content string) (*model.DataHubRecord, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, apperrors.ErrMissingFields
	}

	record := &model.DataHubRecord{Title: title, Content: content}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return record, nil
}

// ListRecords returns records most-recent-first.
func (s *dataHubService) ListRecords(ctx context.Context) ([]model.DataHubRecord, error) {
	return s.records.List(ctx)
}

// DeleteRecord removes a record. Records have no owner, so any signed-in
// user may delete any record.
func (s *dataHubService) DeleteRecord(ctx context.Context, id uint) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
