/*
Package server implements msgpack IPC for rack solving services.

The server package provides a minimal interface for word-puzzle queries using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports solve requests, hint derivation, dictionary lookups, dictionary management ops, and health checks.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Solve requests use mainly this structure:

	{"id": "req_001", "p": "c*t", "min": 1, "max": 8}

The server responds with every matching word in dictionary order:

	{"id": "req_001", "w": ["cat", "cot", "cut"], "c": 3, "t": 145}

Hint requests reveal only a two character prefix of the first match:

	{"id": "req_002", "action": "hint", "p": "aet"}
	{"id": "req_002", "h": "at..."}

Dict management enables runtime adjustment of loaded word sets:

	{"id": "dict_001", "action": "set_size", "chunk_count": 5}
	{"id": "dict_002", "action": "get_options"}

Response structures include status information and error details when an op fails.

# Message Types

Request carries every field an operation can use; unused fields are omitted
on the wire. The action field selects the operation, an empty action means
solve.

SolveResponse holds the match list, count, and elapsed microseconds.
HintResponse carries the partial reveal or the no-hint sentinel.
LookupResponse reports dictionary membership and a prefix count.
DictionaryResponse covers the management actions: getting current
information, setting chunk count, and retrieving available size options.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// Request - incoming IPC request, action selects the operation
type Request struct {
	ID         string `msgpack:"id"`
	Action     string `msgpack:"action,omitempty"` // "", "solve", "hint", "lookup", "health", "get_info", "set_size", "get_options"
	Pattern    string `msgpack:"p,omitempty"`
	Min        int    `msgpack:"min,omitempty"`
	Max        int    `msgpack:"max,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`
	ChunkCount *int   `msgpack:"chunk_count,omitempty"` // for "set_size"
}

// SolveResponse - solve response, matches in dictionary order
type SolveResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"w"`
	Count     int      `msgpack:"c"`
	Truncated bool     `msgpack:"tr,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}

// HintResponse - partial reveal of the first match
type HintResponse struct {
	ID   string `msgpack:"id"`
	Hint string `msgpack:"h"`
}

// LookupResponse - dictionary membership response
type LookupResponse struct {
	ID          string `msgpack:"id"`
	Found       bool   `msgpack:"f"`
	PrefixCount int    `msgpack:"n"`
}

// DictionaryResponse - dictionary management response
type DictionaryResponse struct {
	ID              string       `msgpack:"id"`
	Status          string       `msgpack:"status"`
	Error           string       `msgpack:"error,omitempty"`
	CurrentChunks   int          `msgpack:"current_chunks,omitempty"`
	AvailableChunks int          `msgpack:"available_chunks,omitempty"`
	TotalWords      int          `msgpack:"total_words,omitempty"`
	Options         []SizeOption `msgpack:"options,omitempty"`
}

// SizeOption - dictionary size option
type SizeOption struct {
	ChunkCount int    `msgpack:"chunk_count"`
	WordCount  int    `msgpack:"word_count"`
	SizeLabel  string `msgpack:"size_label"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
