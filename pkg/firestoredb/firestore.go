package firestoredb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/arnavshah/shift-admin-go/pkg/models"
	"github.com/arnavshah/shift-admin-go/pkg/repository"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	shiftRequestsCollection = "shiftRequests"
	staffCollection         = "staff"
)

// Store implements repository.Store on Cloud Firestore
type Store struct {
	client *firestore.Client
	logger zerolog.Logger
}

// New initializes a Firestore client. An empty credentialsPath falls back to
// application default credentials.
func New(ctx context.Context, projectID, credentialsPath string, logger zerolog.Logger) (*Store, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firestore client: %w", err)
	}

	logger.Info().Str("project_id", projectID).Msg("connected to Firestore")

	return &Store{
		client: client,
		logger: logger.With().Str("component", "firestore").Logger(),
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	iter := s.client.Collection(staffCollection).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func notFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// --- Shift requests ---

func (s *Store) CreateShiftRequest(ctx context.Context, req *models.ShiftRequest) error {
	repository.PrepareNew(req, time.Now())
	_, err := s.client.Collection(shiftRequestsCollection).Doc(req.ID).Create(ctx, req)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create shift request: %w", err)
	}
	return nil
}

func (s *Store) GetShiftRequest(ctx context.Context, id string) (*models.ShiftRequest, error) {
	doc, err := s.client.Collection(shiftRequestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if notFound(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shift request: %w", err)
	}

	var req models.ShiftRequest
	if err := doc.DataTo(&req); err != nil {
		return nil, fmt.Errorf("failed to parse shift request: %w", err)
	}
	return &req, nil
}

func (s *Store) ListShiftRequests(ctx context.Context, filter repository.ShiftFilter) ([]models.ShiftRequest, error) {
	q := s.client.Collection(shiftRequestsCollection).Query
	if filter.From != "" {
		q = q.Where("date", ">=", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date", "<=", filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	reqs := []models.ShiftRequest{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate shift requests: %w", err)
		}

		var req models.ShiftRequest
		if err := doc.DataTo(&req); err != nil {
			s.logger.Warn().Err(err).Str("doc_id", doc.Ref.ID).Msg("failed to parse shift request")
			continue
		}
		reqs = append(reqs, req)
	}

	repository.SortShiftRequests(reqs)
	return reqs, nil
}

// UpdateShiftStatus reads and writes inside one transaction so a request can
// only leave pending once.
func (s *Store) UpdateShiftStatus(ctx context.Context, id string, to models.Status) (*models.ShiftRequest, error) {
	ref := s.client.Collection(shiftRequestsCollection).Doc(id)
	var updated models.ShiftRequest

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if notFound(err) {
				return repository.ErrNotFound
			}
			return err
		}
		if err := doc.DataTo(&updated); err != nil {
			return fmt.Errorf("failed to parse shift request: %w", err)
		}
		if err := repository.ValidateTransition(updated.Status, to); err != nil {
			return err
		}

		updated.Status = to
		updated.UpdatedAt = time.Now().UTC()
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(to)},
			{Path: "updatedAt", Value: updated.UpdatedAt},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update shift status: %w", err)
	}
	return &updated, nil
}

// --- Staff ---

func (s *Store) CreateStaff(ctx context.Context, staff *models.Staff) error {
	if staff.CreatedAt.IsZero() {
		staff.CreatedAt = time.Now().UTC()
	}
	_, err := s.client.Collection(staffCollection).Doc(staff.ID).Create(ctx, staff)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (s *Store) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	doc, err := s.client.Collection(staffCollection).Doc(id).Get(ctx)
	if err != nil {
		if notFound(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	var staff models.Staff
	if err := doc.DataTo(&staff); err != nil {
		return nil, fmt.Errorf("failed to parse staff: %w", err)
	}
	return &staff, nil
}

func (s *Store) ListStaff(ctx context.Context) ([]models.Staff, error) {
	iter := s.client.Collection(staffCollection).Documents(ctx)
	defer iter.Stop()

	staff := []models.Staff{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate staff: %w", err)
		}

		var member models.Staff
		if err := doc.DataTo(&member); err != nil {
			s.logger.Warn().Err(err).Str("doc_id", doc.Ref.ID).Msg("failed to parse staff")
			continue
		}
		staff = append(staff, member)
	}

	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff, nil
}

func (s *Store) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	_, err := s.client.Collection(staffCollection).Doc(staff.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: staff.Name},
		{Path: "email", Value: staff.Email},
		{Path: "role", Value: staff.Role},
	})
	if err != nil {
		if notFound(err) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

func (s *Store) DeleteStaff(ctx context.Context, id string) error {
	_, err := s.client.Collection(staffCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if notFound(err) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}
