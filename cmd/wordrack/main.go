/*
Package main implements the rack solving server and CLI [DBG] application.

wordrack is a word-puzzle helper: given a rack of known letters plus '*'
wildcard blanks and an optional word length range, it finds every dictionary
word that can be formed from the available letters. Matching is anagram-style
coverage, each rack letter or blank covers at most one word letter, position
never matters. It can operate as a MessagePack IPC server for integration
with puzzle frontends, or as a CLI application for testing and debugging.

The server mode uses lazy-loaded chunked dictionaries to efficiently handle
large word lists while maintaining low memory usage. Plain text word lists
and one-time remote fetches are also supported.

# Usage

Start the server with default settings:

	wordrack

Use custom data directory and enable debug mode:

	wordrack -data /path/to/chunks -d

Solve against a plain text word list in CLI mode:

	wordrack -c -dict /usr/share/dict/words -min 2 -max 8

Fetch a word list once at startup:

	wordrack -c -url https://example.com/words.txt

The data directory contains chunked binary files named words_0001.bin,
words_0002.bin, etc. These files are loaded on-demand based on the
configured limits.

# Configuration

Runtime configuration is managed through a TOML file that supports server
parameters, dictionary settings, and CLI defaults:

	[server]
	max_results = 64
	max_pattern = 60
	enable_filter = true

	[dict]
	max_words = 50000
	chunk_size = 10000

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Solve requests
are processed synchronously with microsecond timing information included in
responses.

Send a solve request:

	{"id": "req1", "p": "c*t", "min": 1, "max": 8}

Receive every match in dictionary order:

	{"id": "req1", "w": ["cat", "cot", "cut"], "c": 3, "t": 145}

Hint requests reveal only the first two letters of the first match:

	{"id": "req2", "action": "hint", "p": "aet"}

Dictionary management requests allow runtime adjustment of loaded chunks:

	{"id": "dict1", "action": "get_info"}
	{"id": "dict2", "action": "set_size", "chunk_count": 5}

# Solving Engine

The core functionality is provided by the solve package, which implements
multiset letter coverage with wildcard blanks and inclusive length bounds.

	engine := solve.NewEngine(dict)
	matches := engine.Solve("c*t", solve.Bounds{Min: 1, Max: 8})
	hint := engine.Hint("c*t", solve.Unbounded)

The engine is a pure function of its inputs: no state is held between calls
beyond the injected dictionary handle, and degenerate inputs (empty pattern,
empty dictionary, inverted bounds) map to empty results, never errors.

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing binary chunk files (default "data/")
	-dict string
	    Plain text word list, used instead of the chunk directory
	-url string
	    Remote word list fetched once at startup
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-min int
	    Default minimum word length
	-max int
	    Default maximum word length (0 for unbounded)
	-limit int
	    Number of matches to display in CLI mode
	-no-filter
	    Disable input filtering for debugging
	-words int
	    Maximum words to load (0 for all)
	-chunk int
	    Words per chunk for lazy loading

The application automatically resolves data and config paths relative to the
executable location, supporting both development and production deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wordrack/wordrack/internal/cli"
	"github.com/wordrack/wordrack/internal/utils"
	"github.com/wordrack/wordrack/pkg/config"
	"github.com/wordrack/wordrack/pkg/dictionary"
	"github.com/wordrack/wordrack/pkg/server"
	"github.com/wordrack/wordrack/pkg/solve"
)

const (
	Version = "0.4.0-beta"
	AppName = "wordrack"
	gh      = "https://github.com/wordrack/wordrack"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	// custom Flags
	showVersion := flag.Bool("version", false, "Show current version")
	binaryDir := flag.String("data", "data/", "Directory containing the binary chunk files")
	dictFile := flag.String("dict", defaultConfig.Dict.Path, "Plain text word list (overrides -data)")
	wordURL := flag.String("url", defaultConfig.Dict.URL, "Remote word list fetched once at startup (overrides -dict and -data)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	minLen := flag.Int("min", defaultConfig.CLI.DefaultMinLen, "Default minimum word length")
	maxLen := flag.Int("max", defaultConfig.CLI.DefaultMaxLen, "Default maximum word length (0 for unbounded)")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of matches to display in CLI mode")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - passes raw query text straight to the engine")
	wordLimit := flag.Int("words", defaultConfig.Dict.MaxWords, "Maximum number of words to load (use 0 for all words)")
	chunkSize := flag.Int("chunk", defaultConfig.Dict.ChunkSize, "Number of words per chunk for lazy loading")

	flag.Parse()

	if *showVersion {
		showVersionBanner()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	// Initialize path resolver for robust path handling
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	var (
		source  server.Source
		runtime *dictionary.RuntimeLoader
	)

	switch {
	case *wordURL != "":
		log.Debugf("Fetching word list from: %s", *wordURL)
		dict := dictionary.Fetch(*wordURL, time.Duration(defaultConfig.Dict.FetchTimeoutSecs)*time.Second)
		if _, ok := dict.Words(); !ok {
			log.Warn("Word list fetch failed, running with empty dict...")
		}
		source = dict

	case *dictFile != "":
		resolved := pathResolver.ResolveRelativePath(*dictFile)
		if format, err := dictionary.DetectFormat(resolved); err == nil && format == dictionary.FormatChunk {
			log.Fatalf("%s is a binary chunk file, point -data at its directory instead", resolved)
		}
		dict, err := dictionary.LoadTextFile(resolved)
		if err != nil {
			log.Fatalf("Failed to load word list: %v", err)
		}
		source = dict

	default:
		resolvedDataDir, err := pathResolver.GetDataDir(*binaryDir)
		if err != nil {
			log.Fatalf("Failed to resolve data dir: (%v)", err)
		}
		log.Debugf("Using data dir at: %s", resolvedDataDir)
		log.Debugf("Init loader: maxWords=[%d], chunkSize=[%d]", *wordLimit, *chunkSize)

		loader := dictionary.NewLoader(resolvedDataDir, *chunkSize, *wordLimit)
		if err := loader.Start(); err != nil {
			log.Fatalf("Failed to init loader: %v", err)
		}
		log.Debug("Loader init done")
		source = loader
		runtime = dictionary.NewRuntimeLoader(loader)
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"min", *minLen,
			"max", *maxLen,
			"limit", *limit,
			"noFilter", *noFilter)

		engine := solve.NewEngine(source)
		inputHandler := cli.NewInputHandler(engine, *minLen, *maxLen, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	configPath, err := pathResolver.GetConfigPath("wordrack-config.toml")
	if err != nil {
		log.Fatalf("Failed to determine config path: (%v)", err)
	}
	log.Debugf("Using config file: (%s)", configPath)

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	srv := server.NewServer(source, runtime, appConfig, configPath)

	showStartupInfo(source)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionBanner prints the styled version info.
func showVersionBanner() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordrack ] Solves rack puzzles really fast!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(source server.Source) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	words, ok := source.Words()

	println("==========")
	println(" wordrack ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("words loaded: [ %s ]", utils.FormatWithCommas(len(words)))
	if !ok {
		log.Warn("dictionary supply failed, solving against empty word list")
	}
	log.Info("status: ready")
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
