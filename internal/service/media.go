package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// Media stores the off-ledger image data that avatar hashes and tweet image
// URLs reference.
type Media struct {
	storage model.Storage
	logger  *logger.Logger
}

func NewMedia(storage model.Storage, logger *logger.Logger) *Media {
	return &Media{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores an image for the caller and returns the object key to be
// used as an avatar hash or tweet image URL.
func (s *Media) Upload(ctx context.Context, caller common.Address, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", apierrors.NewErrInvalidParams("image data is empty")
	}

	key := fmt.Sprintf("media/%s/%s%s",
		strings.ToLower(caller.Hex()), uuid.NewString(), path.Ext(filename))

	if err := s.storage.Upload(ctx, key, bytes.NewReader(data)); err != nil {
		s.logger.Error("Media service: failed to upload object",
			"caller", caller.Hex(),
			"error", err.Error())
		return "", fmt.Errorf("failed to upload media object: %w", err)
	}

	s.logger.Info("Media service: object uploaded",
		"caller", caller.Hex(),
		"key", key)

	return key, nil
}

// Exists reports whether a media object is present for the given key.
func (s *Media) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check media object: %w", err)
	}

	return exists, nil
}
