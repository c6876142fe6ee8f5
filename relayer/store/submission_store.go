package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/bifrost-platform/btc-relayer/types"
)

var (
	// mapping chain id || txid -> StoredSubmission
	submissionBucketName = []byte("psbtSubmissions")
)

// StoredSubmission records the relay of a signed psbt on one chain
type StoredSubmission struct {
	ChainID          types.ChainID `json:"chain_id"`
	Txid             string        `json:"txid"`
	BlockNumber      uint64        `json:"block_number"`
	TxHash           string        `json:"tx_hash"`
	Submissions      uint32        `json:"submissions"`
	FirstSubmittedAt time.Time     `json:"first_submitted_at"`
	LastSubmittedAt  time.Time     `json:"last_submitted_at"`
}

// SubmissionStore is a journal of the psbts this relayer submitted
type SubmissionStore struct {
	db kvdb.Backend
}

// NewSubmissionStore returns a new store backed by db
func NewSubmissionStore(db kvdb.Backend) (*SubmissionStore, error) {
	s := &SubmissionStore{db}
	if err := s.initBuckets(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SubmissionStore) initBuckets() error {
	if err := kvdb.Batch(s.db, func(tx kvdb.RwTx) error {
		_, err := tx.CreateTopLevelBucket(submissionBucketName)
		if err != nil {
			return fmt.Errorf("failed to create submission bucket: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("failed to initialize submission buckets: %w", err)
	}

	return nil
}

// SaveSubmission records a submission of the psbt with the given txid. A
// psbt that was already submitted on the chain has its counter bumped.
func (s *SubmissionStore) SaveSubmission(
	chainID types.ChainID,
	txid chainhash.Hash,
	blockNumber uint64,
	txHash string,
) (*StoredSubmission, error) {
	key := submissionKey(chainID, txid)
	now := time.Now().UTC()

	var saved *StoredSubmission
	err := kvdb.Batch(s.db, func(tx kvdb.RwTx) error {
		bucket := tx.ReadWriteBucket(submissionBucketName)
		if bucket == nil {
			return ErrCorruptedRelayerDb
		}

		record := &StoredSubmission{
			ChainID:          chainID,
			Txid:             txid.String(),
			FirstSubmittedAt: now,
		}
		if existing := bucket.Get(key); existing != nil {
			if err := json.Unmarshal(existing, record); err != nil {
				return fmt.Errorf("failed to unmarshal stored submission: %w", err)
			}
		}

		record.BlockNumber = blockNumber
		record.TxHash = txHash
		record.Submissions++
		record.LastSubmittedAt = now

		marshalled, err := json.Marshal(record)
		if err != nil {
			return err
		}
		saved = record

		return bucket.Put(key, marshalled)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (s *SubmissionStore) GetSubmission(chainID types.ChainID, txid chainhash.Hash) (*StoredSubmission, error) {
	key := submissionKey(chainID, txid)
	record := &StoredSubmission{}

	err := s.db.View(func(tx kvdb.RTx) error {
		bucket := tx.ReadBucket(submissionBucketName)
		if bucket == nil {
			return ErrCorruptedRelayerDb
		}

		v := bucket.Get(key)
		if v == nil {
			return ErrSubmissionNotFound
		}

		return json.Unmarshal(v, record)
	}, func() {})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// HasSubmission reports whether the psbt was already submitted on the chain
func (s *SubmissionStore) HasSubmission(chainID types.ChainID, txid chainhash.Hash) (bool, error) {
	key := submissionKey(chainID, txid)

	var found bool
	err := s.db.View(func(tx kvdb.RTx) error {
		bucket := tx.ReadBucket(submissionBucketName)
		if bucket == nil {
			return ErrCorruptedRelayerDb
		}
		found = bucket.Get(key) != nil

		return nil
	}, func() {
		found = false
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// ListSubmissions returns every stored submission, ordered by chain then txid
func (s *SubmissionStore) ListSubmissions() ([]*StoredSubmission, error) {
	var records []*StoredSubmission

	err := s.db.View(func(tx kvdb.RTx) error {
		bucket := tx.ReadBucket(submissionBucketName)
		if bucket == nil {
			return ErrCorruptedRelayerDb
		}

		return bucket.ForEach(func(_, v []byte) error {
			record := &StoredSubmission{}
			if err := json.Unmarshal(v, record); err != nil {
				return err
			}
			records = append(records, record)

			return nil
		})
	}, func() {
		records = nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func submissionKey(chainID types.ChainID, txid chainhash.Hash) []byte {
	key := make([]byte, 4+chainhash.HashSize)
	binary.BigEndian.PutUint32(key, uint32(chainID))
	copy(key[4:], txid[:])

	return key
}
