package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"gorm.io/gorm"
)

// Store implements repository.Store on top of gorm
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open gorm connection
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateShiftRequest(ctx context.Context, req *models.ShiftRequest) error {
	repository.PrepareNew(req, s.db.NowFunc())
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create shift request: %w", err)
	}
	return nil
}

func (s *Store) GetShiftRequest(ctx context.Context, id string) (*models.ShiftRequest, error) {
	var req models.ShiftRequest
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shift request: %w", err)
	}
	return &req, nil
}

func (s *Store) ListShiftRequests(ctx context.Context, filter repository.ShiftFilter) ([]models.ShiftRequest, error) {
	q := s.db.WithContext(ctx).Model(&models.ShiftRequest{})
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	reqs := []models.ShiftRequest{}
	if err := q.Order("date, start_time, id").Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to list shift requests: %w", err)
	}
	return reqs, nil
}

// UpdateShiftStatus moves a pending request to status. The pending check is
// part of the UPDATE so two concurrent decisions cannot both succeed.
func (s *Store) UpdateShiftStatus(ctx context.Context, id string, status models.Status) (*models.ShiftRequest, error) {
	if err := repository.ValidateTransition(models.StatusPending, status); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Model(&models.ShiftRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update shift status: %w", res.Error)
	}

	current, err := s.GetShiftRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		if err := repository.ValidateTransition(current.Status, status); err != nil {
			return nil, err
		}
		return nil, repository.ErrInvalidTransition
	}
	return current, nil
}

func (s *Store) CreateStaff(ctx context.Context, staff *models.Staff) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Staff{}).Where("id = ?", staff.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check staff: %w", err)
		}
		if count > 0 {
			return repository.ErrAlreadyExists
		}
		if err := tx.Create(staff).Error; err != nil {
			return fmt.Errorf("failed to create staff: %w", err)
		}
		return nil
	})
}

func (s *Store) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &staff, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]models.Staff, error) {
	staff := []models.Staff{}
	if err := s.db.WithContext(ctx).Order("id").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *Store) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	res := s.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("id = ?", staff.ID).
		Updates(map[string]interface{}{
			"name":  staff.Name,
			"email": staff.Email,
			"role":  staff.Role,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Staff{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
