// Package router assembles the JSON-RPC 2.0 method table and serves it over
// HTTP POST on a single endpoint.
package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/chirpnet/chirper-server/internal/api/rpc/handler"
	"github.com/chirpnet/chirper-server/internal/api/rpc/middleware"
	"github.com/chirpnet/chirper-server/internal/logger"
	"github.com/chirpnet/chirper-server/internal/model"
)

const maxBodyBytes int64 = 1 << 20 // 1 MiB

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

// Router wires services into the JSON-RPC method table with logging and
// per-route authentication.
type Router struct {
	accountService  handler.AccountService
	feedService     handler.FeedService
	registryService handler.RegistryService
	mediaService    handler.MediaService
	tokenParser     middleware.TokenParser
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// New creates a new Router instance.
func New(
	accountService handler.AccountService,
	feedService handler.FeedService,
	registryService handler.RegistryService,
	mediaService handler.MediaService,
	tokenParser middleware.TokenParser,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService:  accountService,
		feedService:     feedService,
		registryService: registryService,
		mediaService:    mediaService,
		tokenParser:     tokenParser,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Register builds the method table and returns the HTTP handler. Mutating
// methods go through authentication; public reads skip it.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.contextManager, r.logger)

	methods := make(map[string]handler.Func)
	for _, h := range r.handlers() {
		for _, route := range h {
			fn := route.Handle
			if !route.Public {
				fn = authenticate.Wrap(fn)
			}
			methods[route.Method] = logging.Wrap(route.Method, fn)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rpc", func(w http.ResponseWriter, req *http.Request) {
		r.handleRPC(w, req, methods)
	})

	return mux
}

func (r *Router) handlers() [][]handler.Route {
	accountHandler := handler.NewAccount(r.accountService, r.contextManager, r.logger)
	feedHandler := handler.NewFeed(r.feedService, r.contextManager, r.logger)
	registryHandler := handler.NewRegistry(r.registryService, r.logger)
	mediaHandler := handler.NewMedia(r.mediaService, r.contextManager, r.logger)

	return [][]handler.Route{
		accountHandler.Routes(),
		feedHandler.Routes(),
		registryHandler.Routes(),
		mediaHandler.Routes(),
	}
}

func (r *Router) handleRPC(w http.ResponseWriter, req *http.Request, methods map[string]handler.Func) {
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	var rpcReq rpcRequest
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(&rpcReq); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			Error:   &rpcError{Code: -32700, Message: "parse error"},
		})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      rpcReq.ID,
			Error:   &rpcError{Code: -32600, Message: "invalid request"},
		})
		return
	}

	if rpcReq.JSONRPC != "2.0" || rpcReq.Method == "" {
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      rpcReq.ID,
			Error:   &rpcError{Code: -32600, Message: "invalid request"},
		})
		return
	}

	fn, ok := methods[rpcReq.Method]
	if !ok {
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      rpcReq.ID,
			Error:   &rpcError{Code: -32601, Message: "method not found"},
		})
		return
	}

	ctx := r.contextManager.SetAuthHeaderToContext(req.Context(), req.Header.Get("Authorization"))

	result, err := fn(ctx, rpcReq.Params)
	if err != nil {
		code, message := handler.MapError(err)
		writeRPC(w, rpcResponse{
			JSONRPC: "2.0",
			ID:      rpcReq.ID,
			Error:   &rpcError{Code: code, Message: message},
		})
		return
	}

	writeRPC(w, rpcResponse{
		JSONRPC: "2.0",
		ID:      rpcReq.ID,
		Result:  result,
	})
}

func writeRPC(w http.ResponseWriter, resp rpcResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
