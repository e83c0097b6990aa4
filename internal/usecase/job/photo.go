package job

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type AddPhotoInput struct {
	JobID   string
	ActorID string
	Image   io.Reader
}

type AddPhoto struct {
	repo    domain.Repository
	encoder domain.ImageEncoder
	storage domain.PhotoStorage
	audit   *audit.Dispatcher
}

// NewAddPhoto accepts a nil storage; uploads are then refused.
func NewAddPhoto(
	repo domain.Repository,
	encoder domain.ImageEncoder,
	storage domain.PhotoStorage,
	audit *audit.Dispatcher,
) *AddPhoto {
	return &AddPhoto{
		repo:    repo,
		encoder: encoder,
		storage: storage,
		audit:   audit,
	}
}

func (uc *AddPhoto) Execute(
	ctx context.Context,
	in AddPhotoInput,
) (*models.JobPhoto, error) {

	if uc.storage == nil || uc.encoder == nil {
		return nil, httperr.ErrBusiness("photo_storage_disabled")
	}
	if in.Image == nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	j, err := uc.repo.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrNotFound("job_not_found")
	}

	body, err := uc.encoder.Encode(in.Image)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	key := domain.PhotoKey(j.ID, uuid.NewString(), uc.encoder.Extension())
	url, err := uc.storage.Put(ctx, key, body, uc.encoder.ContentType())
	if err != nil {
		return nil, err
	}

	photo := &models.JobPhoto{JobID: j.ID, Key: key, URL: url}
	if err := uc.repo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}

	var actor *string
	if in.ActorID != "" {
		actor = &in.ActorID
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  actor,
		Action:   "job_photo_added",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]string{"key": key},
	})

	return photo, nil
}
