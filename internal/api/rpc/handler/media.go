package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chirpnet/chirper-server/internal/apierrors"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

// MediaService stores off-ledger image data.
type MediaService interface {
	Upload(ctx context.Context, caller common.Address, filename string, data []byte) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Media handles JSON-RPC endpoints for media objects.
type Media struct {
	mediaService   MediaService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewMedia creates a new Media handler.
func NewMedia(mediaService MediaService, contextManager model.ContextManager, logger *logger.Logger) *Media {
	return &Media{
		mediaService:   mediaService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type uploadMediaParams struct {
	Filename string `json:"filename"`
	// Data is the base64-encoded image payload.
	Data string `json:"data"`
}

type mediaExistsParams struct {
	Key string `json:"key"`
}

type uploadMediaResult struct {
	Key string `json:"key"`
}

type mediaExistsResult struct {
	Exists bool `json:"exists"`
}

// Routes returns the media method table.
func (h *Media) Routes() []Route {
	return []Route{
		{Method: "media.upload", Handle: h.upload},
		{Method: "media.exists", Public: true, Handle: h.exists},
	}
}

func (h *Media) upload(ctx context.Context, params json.RawMessage) (any, error) {
	var req uploadMediaParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	caller, ok := h.contextManager.GetCallerFromContext(ctx)
	if !ok {
		return nil, apierrors.NewErrMissingAuthorizationToken()
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, apierrors.NewErrInvalidParams("image data is not valid base64")
	}

	key, err := h.mediaService.Upload(ctx, caller, req.Filename, data)
	if err != nil {
		h.logger.Error("Media handler: upload failed",
			"caller", caller.Hex(),
			"error", err.Error())
		return nil, err
	}

	return uploadMediaResult{Key: key}, nil
}

func (h *Media) exists(ctx context.Context, params json.RawMessage) (any, error) {
	var req mediaExistsParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	exists, err := h.mediaService.Exists(ctx, req.Key)
	if err != nil {
		return nil, err
	}

	return mediaExistsResult{Exists: exists}, nil
}
