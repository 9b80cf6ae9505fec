package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/jadebook/jadebook/internal/error_values"
	"github.com/jadebook/jadebook/internal/repository"
	"github.com/jadebook/jadebook/pkg/entity"
)

type EntriesService struct {
	repo repository.EntriesRepositoryI
}

func NewEntriesService(entriesRepo repository.EntriesRepositoryI) *EntriesService {
	if entriesRepo == nil {
		log.Fatal("provided nil entriesRepo")
	}
	return &EntriesService{
		repo: entriesRepo,
	}
}

func (es *EntriesService) CreateEntry(ctx context.Context, uid uuid.UUID, req *CreateEntryRequest) (*entity.Entry, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	entryDate := req.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now().UTC()
	}
	e := entity.Entry{
		UserID:    uid,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		EntryDate: entryDate,
	}
	id, err := es.repo.Create(ctx, &e)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrEntryExists):
			return nil, errorvalues.ErrEntryExists
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	entry, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (es *EntriesService) GetEntry(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error) {
	entry, err := es.getOwned(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (es *EntriesService) GetUserEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error) {
	entries, err := es.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entries, nil
}

func (es *EntriesService) UpdateEntry(ctx context.Context, entryID, userID uuid.UUID, req *UpdateEntryRequest) (*entity.Entry, error) {
	if err := validateRequest(*req); err != nil {
		return nil, err
	}
	entry, err := es.getOwned(ctx, entryID, userID)
	if err != nil {
		return nil, err
	}
	entry.Title = req.Title
	entry.Content = req.Content
	entry.Tags = req.Tags
	err = es.repo.Update(ctx, entry)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (es *EntriesService) SetPinned(ctx context.Context, entryID, userID uuid.UUID, pinned bool) error {
	_, err := es.getOwned(ctx, entryID, userID)
	if err != nil {
		return err
	}
	err = es.repo.SetPinned(ctx, entryID, pinned)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	return nil
}

func (es *EntriesService) DeleteEntry(ctx context.Context, entryID, userID uuid.UUID) error {
	_, err := es.getOwned(ctx, entryID, userID)
	if err != nil {
		return err
	}
	err = es.repo.Delete(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	return nil
}

// SearchEntries runs the full-text query and a tag lookup with the same
// term, then merges both result sets keeping the first occurrence of each
// entry id.
func (es *EntriesService) SearchEntries(ctx context.Context, uid uuid.UUID, query string) ([]*entity.Entry, error) {
	textMatches, err := es.repo.Search(ctx, uid, query)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	tagMatches, err := es.repo.GetByTag(ctx, uid, query)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	seen := make(map[uuid.UUID]struct{}, len(textMatches)+len(tagMatches))
	merged := make([]*entity.Entry, 0, len(textMatches)+len(tagMatches))
	for _, entry := range textMatches {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		merged = append(merged, entry)
	}
	for _, entry := range tagMatches {
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		merged = append(merged, entry)
	}
	return merged, nil
}

func (es *EntriesService) getOwned(ctx context.Context, entryID, userID uuid.UUID) (*entity.Entry, error) {
	entry, err := es.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return entry, nil
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
