package service

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/placement-success/placement-api/internal/domainkey"
	"github.com/placement-success/placement-api/internal/models"
	appErrors "github.com/placement-success/placement-api/pkg/errors"
)

type keyedLabelRepository interface {
	List(ctx context.Context) ([]models.KeyedLabel, error)
	FindByID(ctx context.Context, id int64) (*models.KeyedLabel, error)
	Create(ctx context.Context, key, label string) (int64, error)
	Update(ctx context.Context, id int64, key, label string) error
	Delete(ctx context.Context, id int64) error
}

type labelRepository interface {
	List(ctx context.Context) ([]models.Label, error)
	FindByID(ctx context.Context, id int64) (*models.Label, error)
	Create(ctx context.Context, label string) (int64, error)
	Update(ctx context.Context, id int64, label string) error
	Delete(ctx context.Context, id int64) error
}

// KeyedLabelRequest holds payload for a key+label reference row. The key
// is derived from the label when omitted.
type KeyedLabelRequest struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// LabelRequest holds payload for a label-only reference row.
type LabelRequest struct {
	Label string `json:"label"`
}

// LookupService manages one reference table of either shape. Instances
// are wired per table at startup.
type LookupService struct {
	keyed  keyedLabelRepository
	labels labelRepository
	logger *zap.Logger
}

// NewKeyedLookupService constructs a lookup service over a key+label
// table.
func NewKeyedLookupService(repo keyedLabelRepository, logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{keyed: repo, logger: logger}
}

// NewLabelLookupService constructs a lookup service over a label-only
// table.
func NewLabelLookupService(repo labelRepository, logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{labels: repo, logger: logger}
}

// ListKeyed returns every key+label row.
func (s *LookupService) ListKeyed(ctx context.Context) ([]models.KeyedLabel, error) {
	rows, err := s.keyed.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reference rows")
	}
	return rows, nil
}

// CreateKeyed inserts a key+label row, deriving the key from the label
// when blank.
func (s *LookupService) CreateKeyed(ctx context.Context, req KeyedLabelRequest) (*models.KeyedLabel, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "label is required")
	}
	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = domainkey.Canonical(label)
	}
	id, err := s.keyed.Create(ctx, key, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create reference row")
	}
	return &models.KeyedLabel{ID: id, Key: key, Label: label}, nil
}

// UpdateKeyed rewrites a key+label row.
func (s *LookupService) UpdateKeyed(ctx context.Context, id int64, req KeyedLabelRequest) error {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return appErrors.Clone(appErrors.ErrValidation, "label is required")
	}
	key := strings.TrimSpace(req.Key)
	if key == "" {
		key = domainkey.Canonical(label)
	}
	if err := s.keyed.Update(ctx, id, key, label); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "reference row not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update reference row")
	}
	return nil
}

// DeleteKeyed removes a key+label row.
func (s *LookupService) DeleteKeyed(ctx context.Context, id int64) error {
	if err := s.keyed.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "reference row not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete reference row")
	}
	return nil
}

// ListLabels returns every label-only row.
func (s *LookupService) ListLabels(ctx context.Context) ([]models.Label, error) {
	rows, err := s.labels.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reference rows")
	}
	return rows, nil
}

// CreateLabel inserts a label-only row.
func (s *LookupService) CreateLabel(ctx context.Context, req LabelRequest) (*models.Label, error) {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "label is required")
	}
	id, err := s.labels.Create(ctx, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create reference row")
	}
	return &models.Label{ID: id, Label: label}, nil
}

// UpdateLabel rewrites a label-only row.
func (s *LookupService) UpdateLabel(ctx context.Context, id int64, req LabelRequest) error {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return appErrors.Clone(appErrors.ErrValidation, "label is required")
	}
	if err := s.labels.Update(ctx, id, label); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "reference row not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update reference row")
	}
	return nil
}

// DeleteLabel removes a label-only row.
func (s *LookupService) DeleteLabel(ctx context.Context, id int64) error {
	if err := s.labels.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "reference row not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete reference row")
	}
	return nil
}
