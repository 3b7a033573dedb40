package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Chunk files hold a little-endian int32 word count header followed by
// length-prefixed words: uint16 byte length, then the word bytes.

// maxChunkWords is a sanity bound on the chunk header word count.
const maxChunkWords = 1000000

// FileFormat represents different word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatChunk              // Chunked binary format
	FormatText               // Plain text format
)

// readChunkHeader reads the word count from a chunk file's header.
func readChunkHeader(filename string) (int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var wordCount int32
	if err := binary.Read(file, binary.LittleEndian, &wordCount); err != nil {
		return 0, fmt.Errorf("failed to read chunk header: %w", err)
	}
	if wordCount < 0 {
		return 0, fmt.Errorf("invalid word count in %s: %d (negative)", filename, wordCount)
	}
	if wordCount > maxChunkWords {
		return 0, fmt.Errorf("suspicious word count in %s: %d (too large)", filename, wordCount)
	}
	return int(wordCount), nil
}

// ReadChunk reads every word from a chunk file, in file order.
func ReadChunk(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	var totalEntries int32
	if err := binary.Read(reader, binary.LittleEndian, &totalEntries); err != nil {
		return nil, fmt.Errorf("failed to read chunk header: %w", err)
	}
	if totalEntries < 0 {
		return nil, fmt.Errorf("invalid word count in %s: %d (negative)", filename, totalEntries)
	}
	if totalEntries > maxChunkWords {
		return nil, fmt.Errorf("suspicious word count in %s: %d (too large)", filename, totalEntries)
	}

	words := make([]string, 0, totalEntries)
	for count := 0; count < int(totalEntries); count++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read word length: %w", err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word: %w", err)
		}
		words = append(words, string(wordBytes))
	}
	return words, nil
}

// WriteChunk writes words to a chunk file in the binary chunk format.
func WriteChunk(filename string, words []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chunk file %s: %w", filename, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := binary.Write(writer, binary.LittleEndian, int32(len(words))); err != nil {
		return fmt.Errorf("failed to write chunk header: %w", err)
	}
	for _, w := range words {
		if err := binary.Write(writer, binary.LittleEndian, uint16(len(w))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := writer.WriteString(w); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
	}
	return writer.Flush()
}

// DetectFormat attempts to detect the format of a word list file.
func DetectFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	basename := strings.ToLower(filepath.Base(filename))

	if strings.HasPrefix(basename, "words_") && ext == ".bin" {
		if _, err := readChunkHeader(filename); err == nil {
			return FormatChunk, nil
		}
	}
	if ext == ".txt" {
		if info, err := os.Stat(filename); err == nil && info.Size() > 0 {
			log.Debugf("Text file %s detected", filename)
			return FormatText, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}
