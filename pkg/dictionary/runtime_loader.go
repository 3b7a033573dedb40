package dictionary

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// RuntimeLoader manages dynamic loading/unloading of chunks during runtime,
// driven by the server's dictionary management requests.
type RuntimeLoader struct {
	loader       *Loader
	targetChunks int
	mu           sync.Mutex
}

// SizeOption is one selectable dictionary size.
type SizeOption struct {
	ChunkCount int
	WordCount  int
	SizeLabel  string
}

// NewRuntimeLoader creates a new runtime loader
func NewRuntimeLoader(loader *Loader) *RuntimeLoader {
	return &RuntimeLoader{loader: loader}
}

// AvailableChunkCount returns the total number of available chunk files
func (rl *RuntimeLoader) AvailableChunkCount() (int, error) {
	chunks, err := rl.loader.GetAvailable()
	if err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// MaxWordsAvailable returns the maximum number of words that can be loaded
func (rl *RuntimeLoader) MaxWordsAvailable() (int, error) {
	chunks, err := rl.loader.GetAvailable()
	if err != nil {
		return 0, err
	}
	totalWords := 0
	for _, chunk := range chunks {
		totalWords += chunk.WordCount
	}
	return totalWords, nil
}

// SetSize loads or unloads chunks until targetChunks are resident.
func (rl *RuntimeLoader) SetSize(targetChunks int) error {
	if targetChunks < 1 {
		return fmt.Errorf("minimum dictionary size is 1 chunk")
	}

	chunks, err := rl.loader.GetAvailable()
	if err != nil {
		return err
	}
	if targetChunks > len(chunks) {
		return fmt.Errorf("only %d chunks available, cannot load %d", len(chunks), targetChunks)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	currentChunks := rl.loader.GetStats().LoadedChunks
	log.Debugf("Setting dictionary size: current=%d chunks, target=%d chunks", currentChunks, targetChunks)

	if targetChunks > currentChunks {
		if err := rl.loadAdditional(chunks, targetChunks-currentChunks); err != nil {
			return err
		}
	} else if targetChunks < currentChunks {
		if err := rl.unloadExcess(currentChunks - targetChunks); err != nil {
			return err
		}
	}
	rl.targetChunks = targetChunks
	return nil
}

// loadAdditional loads the given number of not-yet-loaded chunks, lowest IDs first.
func (rl *RuntimeLoader) loadAdditional(chunks []ChunkInfo, additional int) error {
	resident := make(map[int]bool)
	for _, id := range rl.loader.GetLoadedIDs() {
		resident[id] = true
	}

	loadedCount := 0
	for _, chunk := range chunks {
		if loadedCount >= additional {
			break
		}
		if resident[chunk.ID] {
			continue
		}
		if err := rl.loader.Load(chunk.ID); err != nil {
			log.Warnf("Failed to load chunk %d: %v", chunk.ID, err)
			continue
		}
		loadedCount++
	}
	log.Debugf("Loaded %d additional chunks", loadedCount)
	return nil
}

// unloadExcess unloads chunks from the highest IDs first.
func (rl *RuntimeLoader) unloadExcess(excess int) error {
	loadedIDs := rl.loader.GetLoadedIDs()
	if len(loadedIDs) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(loadedIDs)))

	unloadedCount := 0
	for _, chunkID := range loadedIDs {
		if unloadedCount >= excess {
			break
		}
		if err := rl.loader.Evict(chunkID); err != nil {
			log.Warnf("Failed to unload chunk %d: %v", chunkID, err)
			continue
		}
		unloadedCount++
	}
	log.Debugf("Unloaded %d chunks", unloadedCount)
	return nil
}

// SizeOptions returns the selectable dictionary sizes, cumulative by chunk.
func (rl *RuntimeLoader) SizeOptions() ([]SizeOption, error) {
	chunks, err := rl.loader.GetAvailable()
	if err != nil {
		return nil, err
	}

	options := make([]SizeOption, 0, len(chunks))
	totalWords := 0
	for i, chunk := range chunks {
		totalWords += chunk.WordCount
		options = append(options, SizeOption{
			ChunkCount: i + 1,
			WordCount:  totalWords,
			SizeLabel:  fmt.Sprintf("%dK words", totalWords/1000),
		})
	}
	return options, nil
}
