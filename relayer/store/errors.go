package store

import "errors"

var (
	// ErrCorruptedRelayerDb For some reason, db on disk representation have changed
	ErrCorruptedRelayerDb = errors.New("relayer db is corrupted")

	// ErrSubmissionNotFound The psbt we try to fetch was never submitted
	ErrSubmissionNotFound = errors.New("psbt submission not found")
)
