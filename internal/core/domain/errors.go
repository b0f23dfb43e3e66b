package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPort is returned when the configured port is outside the TCP range.
	ErrInvalidPort = zerr.New("port must be between 1 and 65535")

	// ErrServeDirNotFound is returned when the serve directory does not exist.
	ErrServeDirNotFound = zerr.New("serve directory does not exist")

	// ErrServeDirNotADir is returned when the serve path exists but is not a directory.
	ErrServeDirNotADir = zerr.New("serve path is not a directory")

	// ErrWatchDirNotFound is returned when the watch directory does not exist.
	ErrWatchDirNotFound = zerr.New("watch directory does not exist")

	// ErrWatchDirNotADir is returned when the watch path exists but is not a directory.
	ErrWatchDirNotADir = zerr.New("watch path is not a directory")
)
