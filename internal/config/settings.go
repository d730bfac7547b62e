package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/shogentheone/videograb/internal/platform"
)

// Default values
const (
	DefaultOutputPath          = "downloads"
	DefaultQuality             = "best"
	DefaultMaxRetries          = 3
	DefaultRetryDelaySec       = 2
	DefaultConcurrentDownloads = 3
	DefaultSubtitleLanguages   = "all"
	DefaultMaxFilenameLength   = 200
	DefaultEmbedSubtitles      = true
	DefaultShowFileSize        = true
)

// Bounds for clamped settings
const (
	MinRetries        = 1
	MaxRetries        = 10
	MinConcurrent     = 1
	MaxConcurrent     = 10
	MinFilenameLength = 20
)

// Environment variables overriding file locations
const (
	EnvConfigPath  = "VIDEOGRAB_CONFIG"
	EnvHistoryPath = "VIDEOGRAB_HISTORY"
	EnvLogPath     = "VIDEOGRAB_LOG"
	EnvLogLevel    = "VIDEOGRAB_LOG_LEVEL"
)

// Default file locations
const (
	DefaultConfigFile  = "config.json"
	DefaultHistoryFile = "history.json"
	DefaultLogFile     = "videograb.log"
	DefaultLogLevel    = "info"
)

// File permissions
const (
	configFilePermissions = 0644
)

// Settings holds the persistent user configuration. Missing keys fall back to
// defaults; unknown keys found in the file are preserved on save but ignored.
type Settings struct {
	OutputPath          string `json:"output_path"`
	DefaultQuality      string `json:"default_quality"`
	MaxRetries          int    `json:"max_retries"`
	RetryDelay          int    `json:"retry_delay"` // seconds, doubled per attempt
	ConcurrentDownloads int    `json:"concurrent_downloads"`
	DownloadSubtitles   bool   `json:"download_subtitles"`
	SubtitleLanguages   string `json:"subtitle_languages"`
	EmbedSubtitles      bool   `json:"embed_subtitles"`
	MaxFilenameLength   int    `json:"max_filename_length"`
	ShowFileSize        bool   `json:"show_file_size"`

	path  string
	extra map[string]json.RawMessage
}

// DefaultSettings returns a Settings populated with documented defaults
func DefaultSettings() *Settings {
	return &Settings{
		OutputPath:          DefaultOutputPath,
		DefaultQuality:      DefaultQuality,
		MaxRetries:          DefaultMaxRetries,
		RetryDelay:          DefaultRetryDelaySec,
		ConcurrentDownloads: DefaultConcurrentDownloads,
		DownloadSubtitles:   false,
		SubtitleLanguages:   DefaultSubtitleLanguages,
		EmbedSubtitles:      DefaultEmbedSubtitles,
		MaxFilenameLength:   DefaultMaxFilenameLength,
		ShowFileSize:        DefaultShowFileSize,
		extra:               map[string]json.RawMessage{},
	}
}

// Load reads settings from path, merging file contents over defaults.
// A missing or unreadable file is not fatal: defaults are returned and the
// next Save will create the file.
func Load(path string) *Settings {
	settings := DefaultSettings()
	settings.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}

	// Known keys overwrite defaults; everything else is kept verbatim.
	if err := json.Unmarshal(data, settings); err != nil {
		return DefaultSettings()
	}
	for key, value := range raw {
		if !isKnownKey(key) {
			settings.extra[key] = value
		}
	}

	settings.clamp()
	return settings
}

// Save writes the settings back to the file they were loaded from,
// preserving unknown keys from the original file.
func (s *Settings) Save() error {
	if s.path == "" {
		return fmt.Errorf("settings have no backing file")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return fmt.Errorf("failed to re-decode settings: %w", err)
	}
	for key, value := range s.extra {
		merged[key] = value
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, out, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Path returns the settings file location
func (s *Settings) Path() string {
	return s.path
}

// BackoffBase returns the retry delay as a duration
func (s *Settings) BackoffBase() time.Duration {
	return time.Duration(s.RetryDelay) * time.Second
}

// SetMaxRetries stores a clamped retry count
func (s *Settings) SetMaxRetries(count int) {
	s.MaxRetries = clampInt(count, MinRetries, MaxRetries)
}

// SetConcurrentDownloads stores a clamped worker count
func (s *Settings) SetConcurrentDownloads(count int) {
	s.ConcurrentDownloads = clampInt(count, MinConcurrent, MaxConcurrent)
}

// clamp normalizes values that arrived out of range from the file
func (s *Settings) clamp() {
	s.MaxRetries = clampInt(s.MaxRetries, MinRetries, MaxRetries)
	s.ConcurrentDownloads = clampInt(s.ConcurrentDownloads, MinConcurrent, MaxConcurrent)
	if s.RetryDelay < 0 {
		s.RetryDelay = DefaultRetryDelaySec
	}
	if s.MaxFilenameLength < MinFilenameLength {
		s.MaxFilenameLength = DefaultMaxFilenameLength
	}
	if s.OutputPath == "" {
		s.OutputPath = DefaultOutputPath
	}
	if s.SubtitleLanguages == "" {
		s.SubtitleLanguages = DefaultSubtitleLanguages
	}
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func isKnownKey(key string) bool {
	switch key {
	case "output_path", "default_quality", "max_retries", "retry_delay",
		"concurrent_downloads", "download_subtitles", "subtitle_languages",
		"embed_subtitles", "max_filename_length", "show_file_size":
		return true
	}
	return false
}

// Paths holds resolved locations for the files the app persists to
type Paths struct {
	Config   string
	History  string
	Log      string
	LogLevel string
}

// ResolvePaths loads an optional .env file and resolves file locations from
// the environment, falling back to files next to the working directory.
func ResolvePaths() Paths {
	_ = godotenv.Load()

	return Paths{
		Config:   getEnvStr(EnvConfigPath, DefaultConfigFile),
		History:  getEnvStr(EnvHistoryPath, DefaultHistoryFile),
		Log:      getEnvStr(EnvLogPath, DefaultLogFile),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),
	}
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// EnsureOutputDir creates the configured output directory if needed
func (s *Settings) EnsureOutputDir() error {
	return platform.EnsureDir(filepath.Clean(s.OutputPath))
}
