package server

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wordrack/wordrack/internal/utils"
	"github.com/wordrack/wordrack/pkg/config"
	"github.com/wordrack/wordrack/pkg/dictionary"
	"github.com/wordrack/wordrack/pkg/solve"
)

// Source provides the word supply and the current dictionary snapshot.
// A static Dictionary is its own snapshot, a chunk Loader swaps snapshots
// as chunks load and unload.
type Source interface {
	dictionary.Supplier
	Snapshot() *dictionary.Dictionary
}

// Server handles the IPC for rack solving
type Server struct {
	engine     solve.ISolver
	source     Source
	runtime    *dictionary.RuntimeLoader
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	writer     io.Writer
	requests   int
}

// NewServer creates a new solving server using stdin/stdout for IPC.
// runtime may be nil when the dictionary is not chunk-loaded.
func NewServer(source Source, runtime *dictionary.RuntimeLoader, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(source, runtime, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit reader/writer, used by tests.
func NewServerWithIO(source Source, runtime *dictionary.RuntimeLoader, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:     solve.NewEngine(source),
		source:     source,
		runtime:    runtime,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		writer:     w,
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches an incoming request by action
func (s *Server) handleRequest(request Request) {
	s.requests++

	switch request.Action {
	case "", "solve":
		s.handleSolve(request)
	case "hint":
		s.handleHint(request)
	case "lookup":
		s.handleLookup(request)
	case "get_info", "set_size", "get_options":
		s.handleDictionary(request)
	case "health":
		s.sendResponse(map[string]string{"status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// sendResponse marshals the given response into msgpack and writes it out.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// bounds normalizes the request's length range: negative values are treated
// as absent, the same way malformed bound text is before it reaches here.
func bounds(request Request) solve.Bounds {
	b := solve.Bounds{Min: request.Min, Max: request.Max}
	if b.Min < 0 {
		b.Min = 0
	}
	if b.Max < 0 {
		b.Max = 0
	}
	return b
}

// handleSolve processes a solve request. The pattern is validated against
// the configured caps, matches are gathered in dictionary order, and the
// result is truncated to the requested or configured limit.
func (s *Server) handleSolve(request Request) {
	pattern := request.Pattern

	if s.config.Server.MaxPattern > 0 && len(pattern) > s.config.Server.MaxPattern {
		s.sendError(request.ID, fmt.Sprintf("Pattern exceeds maximum length of %d characters", s.config.Server.MaxPattern), 400)
		log.Debug("Pattern is too long in request")
		return
	}

	if s.config.Server.EnableFilter && pattern != "" && !utils.IsValidRack(pattern) {
		log.Debugf("Pattern '%s' rejected by input filter", pattern)
		s.sendResponse(SolveResponse{ID: request.ID})
		return
	}

	limit := request.Limit
	if limit < 1 || (s.config.Server.MaxResults > 0 && limit > s.config.Server.MaxResults) {
		limit = s.config.Server.MaxResults
	}

	start := time.Now()
	words := s.engine.Solve(pattern, bounds(request))
	elapsed := time.Since(start)

	truncated := false
	if limit > 0 && len(words) > limit {
		words = words[:limit]
		truncated = true
	}

	s.sendResponse(SolveResponse{
		ID:        request.ID,
		Words:     words,
		Count:     len(words),
		Truncated: truncated,
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleHint derives the partial reveal for a pattern.
func (s *Server) handleHint(request Request) {
	pattern := request.Pattern

	if s.config.Server.MaxPattern > 0 && len(pattern) > s.config.Server.MaxPattern {
		s.sendError(request.ID, fmt.Sprintf("Pattern exceeds maximum length of %d characters", s.config.Server.MaxPattern), 400)
		return
	}

	s.sendResponse(HintResponse{
		ID:   request.ID,
		Hint: s.engine.Hint(pattern, bounds(request)),
	})
}

// handleLookup reports dictionary membership for a word and how many
// entries share it as a prefix.
func (s *Server) handleLookup(request Request) {
	word := strings.ToLower(request.Pattern)
	if word == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		return
	}

	snapshot := s.source.Snapshot()
	s.sendResponse(LookupResponse{
		ID:          request.ID,
		Found:       snapshot.Contains(word),
		PrefixCount: snapshot.CountPrefix(word),
	})
}

// handleDictionary processes dictionary management actions.
func (s *Server) handleDictionary(request Request) {
	if s.runtime == nil {
		s.sendResponse(DictionaryResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "dictionary management not available for this word source",
		})
		return
	}

	switch request.Action {
	case "get_info":
		available, err := s.runtime.AvailableChunkCount()
		if err != nil {
			s.sendResponse(DictionaryResponse{ID: request.ID, Status: "error", Error: err.Error()})
			return
		}
		s.sendResponse(DictionaryResponse{
			ID:              request.ID,
			Status:          "ok",
			CurrentChunks:   len(s.runtimeLoadedIDs()),
			AvailableChunks: available,
			TotalWords:      s.source.Snapshot().Len(),
		})
	case "set_size":
		if request.ChunkCount == nil {
			s.sendResponse(DictionaryResponse{ID: request.ID, Status: "error", Error: "missing chunk_count"})
			return
		}
		if err := s.runtime.SetSize(*request.ChunkCount); err != nil {
			s.sendResponse(DictionaryResponse{ID: request.ID, Status: "error", Error: err.Error()})
			return
		}
		s.sendResponse(DictionaryResponse{
			ID:            request.ID,
			Status:        "ok",
			CurrentChunks: *request.ChunkCount,
			TotalWords:    s.source.Snapshot().Len(),
		})
	case "get_options":
		opts, err := s.runtime.SizeOptions()
		if err != nil {
			s.sendResponse(DictionaryResponse{ID: request.ID, Status: "error", Error: err.Error()})
			return
		}
		options := make([]SizeOption, len(opts))
		for i, o := range opts {
			options[i] = SizeOption{
				ChunkCount: o.ChunkCount,
				WordCount:  o.WordCount,
				SizeLabel:  o.SizeLabel,
			}
		}
		s.sendResponse(DictionaryResponse{ID: request.ID, Status: "ok", Options: options})
	}
}

func (s *Server) runtimeLoadedIDs() []int {
	type loadedIDs interface{ GetLoadedIDs() []int }
	if l, ok := s.source.(loadedIDs); ok {
		return l.GetLoadedIDs()
	}
	return nil
}
