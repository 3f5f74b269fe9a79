package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/deltapad/textcore/classify"
	"github.com/deltapad/textcore/config"
	"github.com/deltapad/textcore/ir"
	"github.com/deltapad/textcore/parse"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	MethodParseJSON        = "deltapad/parseJson"
	MethodQueryPaths       = "deltapad/queryPaths"
	MethodClassifyLanguage = "deltapad/classifyLanguage"
	MethodMapDiffRanges    = "deltapad/mapDiffRanges"
)

// DocumentParseError is the error code for a text that is not valid JSON.
const DocumentParseError jsonrpc2.Code = -32001

const notJSONMessage = "Not valid JSON. Open a JSON file to use this panel."

var errShutdown = errors.New("server is shut down")

type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	conn     jsonrpc2.Conn
	shutdown atomic.Bool
}

func NewServer(cfg *config.Config, log *zap.Logger, conn jsonrpc2.Conn) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, log: log, conn: conn}
}

// Handle is the jsonrpc2.Handler of the server.
func (s *Server) Handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	method := req.Method()
	if method == protocol.MethodExit {
		s.log.Info("exit")
		if s.conn != nil {
			return s.conn.Close()
		}
		return nil
	}
	start := time.Now()
	res, err := s.dispatch(ctx, method, req.Params())
	if err != nil {
		s.log.Warn("request failed",
			zap.String("method", method),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return reply(ctx, nil, rpcError(err))
	}
	s.log.Debug("request",
		zap.String("method", method),
		zap.Duration("took", time.Since(start)))
	return reply(ctx, res, nil)
}

func (s *Server) dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.shutdown.Load() {
		return nil, errShutdown
	}
	switch method {
	case protocol.MethodInitialize:
		return s.initialize(), nil
	case protocol.MethodInitialized:
		return nil, nil
	case protocol.MethodShutdown:
		s.shutdown.Store(true)
		return nil, nil
	case MethodParseJSON:
		var p ParseJSONParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		return s.parseJSON(&p)
	case MethodQueryPaths:
		var p QueryPathsParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		return s.queryPaths(&p)
	case MethodClassifyLanguage:
		var p ClassifyLanguageParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		return s.classifyLanguage(&p)
	case MethodMapDiffRanges:
		var p MapDiffRangesParams
		if err := unmarshalParams(params, &p); err != nil {
			return nil, err
		}
		return s.mapDiffRanges(&p)
	default:
		return nil, jsonrpc2.NewError(jsonrpc2.MethodNotFound, fmt.Sprintf("method not found: %q", method))
	}
}

func (s *Server) initialize() *protocol.InitializeResult {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			Experimental: map[string]any{
				"methods": []string{
					MethodParseJSON,
					MethodQueryPaths,
					MethodClassifyLanguage,
					MethodMapDiffRanges,
				},
				"languages": classify.Tags(),
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    serverName,
			Version: version,
		},
	}
}

func unmarshalParams(params json.RawMessage, dst any) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: missing params", ir.ErrInvalidArgument)
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrInvalidArgument, err)
	}
	return nil
}

type parseErrorData struct {
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Cause  string `json:"cause"`
}

// rpcError maps engine errors onto JSON-RPC errors.
func rpcError(err error) *jsonrpc2.Error {
	var rpcErr *jsonrpc2.Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	var perr *parse.Error
	if errors.As(err, &perr) {
		res := jsonrpc2.NewError(DocumentParseError, notJSONMessage)
		d, mErr := json.Marshal(&parseErrorData{
			Offset: perr.Offset,
			Line:   perr.Line,
			Col:    perr.Col,
			Cause:  perr.Err.Error(),
		})
		if mErr == nil {
			raw := json.RawMessage(d)
			res.Data = &raw
		}
		return res
	}
	switch {
	case errors.Is(err, ir.ErrInvalidArgument):
		return jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error())
	case errors.Is(err, errShutdown):
		return jsonrpc2.NewError(jsonrpc2.InvalidRequest, err.Error())
	}
	return jsonrpc2.NewError(jsonrpc2.InternalError, err.Error())
}
