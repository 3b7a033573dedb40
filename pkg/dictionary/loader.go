package dictionary

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Loader manages lazy loading of chunked word list files. Chunks are plain
// binary files named words_0001.bin, words_0002.bin, ... in a single
// directory. Loaded chunks are merged, in chunk order, into an immutable
// Dictionary snapshot handed to the solver.
type Loader struct {
	dirPath      string
	chunkSize    int
	maxWords     int
	loadedChunks map[int]bool
	chunkWords   map[int][]string
	snapshot     *Dictionary
	mu           sync.RWMutex
	loadingCh    chan int
	done         chan struct{}
	errorCount   map[int]int
	maxRetries   int
}

// ChunkInfo contains metadata about a chunk file
type ChunkInfo struct {
	ID        int
	Filename  string
	WordCount int
}

// LoaderStats provides statistics about the loading process
type LoaderStats struct {
	TotalWords      int
	LoadedChunks    int
	AvailableChunks int
	IsLoading       bool
}

// NewLoader creates a lazy chunk loader for dirPath. maxWords of 0 means
// load everything available.
func NewLoader(dirPath string, chunkSize, maxWords int) *Loader {
	return &Loader{
		dirPath:      dirPath,
		chunkSize:    chunkSize,
		maxWords:     maxWords,
		loadedChunks: make(map[int]bool),
		chunkWords:   make(map[int][]string),
		snapshot:     NewFailed(),
		loadingCh:    make(chan int, 10),
		done:         make(chan struct{}),
		errorCount:   make(map[int]int),
		maxRetries:   3,
	}
}

// GetAvailable scans the directory for chunk files, sorted by ID.
func (l *Loader) GetAvailable() ([]ChunkInfo, error) {
	pattern := filepath.Join(l.dirPath, "words_*.bin")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for chunk files: %w", err)
	}

	var chunks []ChunkInfo
	for _, file := range files {
		basename := filepath.Base(file)
		// words_0001.bin -> 1
		idStr := strings.TrimSuffix(strings.TrimPrefix(basename, "words_"), ".bin")
		chunkID, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		wordCount, err := readChunkHeader(file)
		if err != nil {
			log.Warnf("Failed to read header for chunk %s: %v", file, err)
			wordCount = 0
		}
		chunks = append(chunks, ChunkInfo{
			ID:        chunkID,
			Filename:  file,
			WordCount: wordCount,
		})
	}

	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].ID < chunks[j].ID
	})
	return chunks, nil
}

// Start loads the first chunk synchronously so callers immediately have
// words to solve against, then queues the rest for background loading.
func (l *Loader) Start() error {
	chunks, err := l.GetAvailable()
	if err != nil {
		return fmt.Errorf("failed to get available chunks: %w", err)
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no chunk files found in %s", l.dirPath)
	}

	log.Debugf("Found %d chunk files", len(chunks))

	go l.backgroundLoader()

	wordsToLoad := l.maxWords
	if wordsToLoad == 0 {
		for _, chunk := range chunks {
			wordsToLoad += chunk.WordCount
		}
	}

	if err := l.Load(chunks[0].ID); err != nil {
		return err
	}
	loadedWords := chunks[0].WordCount

	for _, chunk := range chunks[1:] {
		if loadedWords >= wordsToLoad {
			break
		}
		select {
		case l.loadingCh <- chunk.ID:
			log.Debugf("Queued chunk %d for loading", chunk.ID)
		case <-time.After(100 * time.Millisecond):
			log.Warnf("Loading queue full, chunk %d will be loaded later", chunk.ID)
		}
		loadedWords += chunk.WordCount
	}
	return nil
}

// backgroundLoader drains the queue, retrying failed chunks a few times.
func (l *Loader) backgroundLoader() {
	for {
		select {
		case chunkID := <-l.loadingCh:
			if err := l.Load(chunkID); err != nil {
				log.Errorf("Failed to load chunk %d: %v", chunkID, err)

				l.mu.Lock()
				l.errorCount[chunkID]++
				errorCount := l.errorCount[chunkID]
				l.mu.Unlock()

				if errorCount < l.maxRetries {
					log.Debugf("Retrying chunk %d (attempt %d/%d)", chunkID, errorCount+1, l.maxRetries)
					go func(id int) {
						time.Sleep(time.Duration(errorCount) * time.Second)
						select {
						case l.loadingCh <- id:
						case <-l.done:
						}
					}(chunkID)
				} else {
					log.Errorf("Chunk %d failed %d times, giving up", chunkID, l.maxRetries)
				}
			}
		case <-l.done:
			return
		}
	}
}

// Load reads a chunk into memory and refreshes the snapshot.
func (l *Loader) Load(chunkID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loadedChunks[chunkID] {
		return nil
	}

	filename := filepath.Join(l.dirPath, fmt.Sprintf("words_%04d.bin", chunkID))
	words, err := ReadChunk(filename)
	if err != nil {
		return err
	}

	l.chunkWords[chunkID] = words
	l.loadedChunks[chunkID] = true
	l.rebuildSnapshot()

	log.Debugf("Chunk %d loaded: %d words", chunkID, len(words))
	return nil
}

// Evict removes a loaded chunk from memory and refreshes the snapshot.
func (l *Loader) Evict(chunkID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.loadedChunks[chunkID] {
		return fmt.Errorf("chunk %d is not loaded", chunkID)
	}

	delete(l.loadedChunks, chunkID)
	delete(l.chunkWords, chunkID)
	l.rebuildSnapshot()

	log.Debugf("Unloaded chunk %d", chunkID)
	return nil
}

// rebuildSnapshot remakes the Dictionary from loaded chunks in ID order.
// Caller must hold l.mu.
func (l *Loader) rebuildSnapshot() {
	ids := make([]int, 0, len(l.loadedChunks))
	for id := range l.loadedChunks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var words []string
	for _, id := range ids {
		words = append(words, l.chunkWords[id]...)
	}

	if len(ids) == 0 {
		l.snapshot = NewFailed()
		return
	}
	l.snapshot = New(words)
	log.Debugf("Snapshot rebuilt with %d loaded chunks", len(ids))
}

// Snapshot returns the current merged dictionary.
func (l *Loader) Snapshot() *Dictionary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

// Words implements Supplier over the current snapshot.
func (l *Loader) Words() ([]string, bool) {
	return l.Snapshot().Words()
}

// GetLoadedIDs returns the currently loaded chunk IDs, sorted.
func (l *Loader) GetLoadedIDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var ids []int
	for chunkID, loaded := range l.loadedChunks {
		if loaded {
			ids = append(ids, chunkID)
		}
	}
	sort.Ints(ids)
	return ids
}

// GetStats returns current loading statistics
func (l *Loader) GetStats() LoaderStats {
	chunks, _ := l.GetAvailable()

	l.mu.RLock()
	defer l.mu.RUnlock()

	return LoaderStats{
		TotalWords:      l.snapshot.Len(),
		LoadedChunks:    len(l.loadedChunks),
		AvailableChunks: len(chunks),
		IsLoading:       len(l.loadingCh) > 0,
	}
}

// Stop stops the background loading process
func (l *Loader) Stop() {
	close(l.done)
}
