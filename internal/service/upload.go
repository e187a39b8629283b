package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"upchat/internal/cache"
	"upchat/internal/log"
)

// ErrRoundTripMismatch means the cache returned different bytes than were
// stored, which the demo treats as a hard failure.
var ErrRoundTripMismatch = errors.New("cache round trip returned different bytes")

// UploadResult describes one file that completed the round trip.
type UploadResult struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
	Key      string `json:"key"`
}

// Uploader pushes uploaded file bytes through the key-value cache and back.
type Uploader interface {
	RoundTrip(ctx context.Context, fileName string, data []byte) (*UploadResult, error)
}

type uploadService struct {
	store cache.Store
}

func NewUploadService(store cache.Store) Uploader {
	return &uploadService{store: store}
}

// RoundTrip stores the bytes under a fresh key, reads them back and verifies
// the cache returned what was written.
func (s *uploadService) RoundTrip(ctx context.Context, fileName string, data []byte) (*UploadResult, error) {
	l := log.Ctx(ctx)

	key := fmt.Sprintf("%s:%s", uuid.New().String(), fileName)

	if err := s.store.Set(ctx, key, data); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	echoed, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload back: %w", err)
	}

	if !bytes.Equal(data, echoed) {
		return nil, ErrRoundTripMismatch
	}

	l.Info().
		Str(log.FieldFileName, fileName).
		Str(log.FieldCacheKey, key).
		Int64(log.FieldFileSize, int64(len(data))).
		Msg("upload round trip completed")

	return &UploadResult{
		FileName: fileName,
		Size:     int64(len(data)),
		Key:      key,
	}, nil
}
