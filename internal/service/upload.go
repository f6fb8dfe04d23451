package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"modupload/internal/model"
	"modupload/internal/repository"
	"modupload/internal/storage"
)

var (
	ErrModuleNil = errors.New("module is nil")
)

// UploadResult reports what a successful upload created.
type UploadResult struct {
	ModuleID int64
	// ResourceIDs holds the generated resource ids in declared order.
	ResourceIDs []int64
}

// UploadService defines the use case of recording a module and its
// resources in the database.
type UploadService interface {
	// Upload records the module row, then the resource rows in their
	// declared order. The first error aborts the run; rows already
	// inserted stay.
	Upload(ctx context.Context, mod *model.Module, resources []model.Resource, subscriptionPlanID int) (*UploadResult, error)
}

// uploadService is a concrete implementation of UploadService.
type uploadService struct {
	modules   repository.ModuleRepository
	resources repository.ResourceRepository
	store     storage.Storage
	logger    zerolog.Logger
}

// NewUploadService constructs a new UploadService. store may be nil;
// resource content is then stored inline in the database instead of
// being offloaded to object storage.
func NewUploadService(modules repository.ModuleRepository, resources repository.ResourceRepository, store storage.Storage, logger zerolog.Logger) UploadService {
	return &uploadService{
		modules:   modules,
		resources: resources,
		store:     store,
		logger:    logger,
	}
}

func (s *uploadService) Upload(ctx context.Context, mod *model.Module, resources []model.Resource, subscriptionPlanID int) (*UploadResult, error) {
	if mod == nil {
		return nil, ErrModuleNil
	}

	moduleID, err := s.modules.Create(ctx, mod, subscriptionPlanID)
	if err != nil {
		return nil, fmt.Errorf("record module: %w", err)
	}
	s.logger.Info().
		Str("module", mod.Name).
		Int64("module_id", moduleID).
		Int("subscription_plan_id", subscriptionPlanID).
		Msg("module recorded")

	// Every resource row links forward to the one that follows it, so
	// the insert order is inverted: the last resource goes in first
	// (with no next link) and each earlier one points at the id the
	// previous insert returned.
	ids := make([]int64, len(resources))
	var nextID *int64
	for i := len(resources) - 1; i >= 0; i-- {
		id, err := s.recordResource(ctx, moduleID, resources[i], nextID)
		if err != nil {
			return nil, err
		}
		ids[i] = id
		next := id
		nextID = &next

		s.logger.Info().
			Str("resource", resources[i].Name).
			Int64("resource_id", id).
			Int64("module_id", moduleID).
			Msg("resource recorded")
	}

	return &UploadResult{ModuleID: moduleID, ResourceIDs: ids}, nil
}

// recordResource inserts a single resource row. With object storage
// configured, the content is put under a generated key first and the
// object is deleted again if the row insert fails.
func (s *uploadService) recordResource(ctx context.Context, moduleID int64, res model.Resource, nextID *int64) (int64, error) {
	rec := &repository.ResourceRecord{
		ModuleID:       moduleID,
		NextResourceID: nextID,
	}

	var objectKey string
	if s.store != nil {
		key := path.Join("resources", uuid.New().String()+filepath.Ext(res.Name))
		_, err := s.store.Put(ctx, key, strings.NewReader(res.Content), storage.PutObjectOptions{
			Size:        int64(len(res.Content)),
			ContentType: "text/html",
			Metadata: map[string]string{
				"original-filename": res.Name,
			},
		})
		if err != nil {
			return 0, fmt.Errorf("upload resource %s to storage: %w", res.Name, err)
		}
		objectKey = key
		rec.StorageKey = &objectKey
	} else {
		content := res.Content
		rec.Content = &content
	}

	id, err := s.resources.Create(ctx, rec)
	if err != nil {
		if s.store != nil {
			// Rollback: delete the object from storage
			if delErr := s.store.Delete(ctx, objectKey); delErr != nil {
				return 0, fmt.Errorf("record resource %s: %v; rollback delete failed: %v", res.Name, err, delErr)
			}
		}
		return 0, fmt.Errorf("record resource %s: %w", res.Name, err)
	}
	return id, nil
}
