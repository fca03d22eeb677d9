// Package secretstore keeps the CRIX API token and secret in a small
// Badger database, optionally encrypted at rest, so credentials stay out
// of plain config files and shell history.
package secretstore

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

const (
	keyToken  = "crix/api-token"
	keySecret = "crix/api-secret"
)

// Store is a Badger-backed key/value store for credentials.
type Store struct {
	db *badger.DB
}

// Options configures Open.
type Options struct {
	Path          string
	EncryptionKey []byte // 32 bytes; nil opens the store unencrypted
	ReadOnly      bool
}

// Open opens (or creates) the store at opts.Path.
func Open(opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, errors.New("secretstore: path is required")
	}
	bopts := badger.DefaultOptions(opts.Path).
		WithLogger(nil).
		WithReadOnly(opts.ReadOnly)
	if len(opts.EncryptionKey) > 0 {
		// Badger needs an index cache when encryption is on.
		bopts = bopts.
			WithEncryptionKey(opts.EncryptionKey).
			WithIndexCacheSize(64 << 20)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, errors.Wrap(err, "secretstore: open")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Credentials returns the stored API token/secret pair. ok is false when
// either half is missing.
func (s *Store) Credentials() (token, secret string, ok bool, err error) {
	token, tokenOK, err := s.get(keyToken)
	if err != nil {
		return "", "", false, err
	}
	secret, secretOK, err := s.get(keySecret)
	if err != nil {
		return "", "", false, err
	}
	return token, secret, tokenOK && secretOK, nil
}

// SaveCredentials stores the API token/secret pair.
func (s *Store) SaveCredentials(token, secret string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyToken), []byte(token)); err != nil {
			return err
		}
		return txn.Set([]byte(keySecret), []byte(secret))
	})
}

func (s *Store) get(key string) (string, bool, error) {
	var (
		out   string
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "secretstore: get %s", key)
	}
	return out, found, nil
}

// ParseKey decodes a 32-byte encryption key from hex or base64. Empty
// input yields a nil key (store opens unencrypted).
func ParseKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "0x"))
	if raw == "" {
		return nil, nil
	}
	if len(raw) == 64 {
		if b, err := hex.DecodeString(raw); err == nil {
			return b, nil
		}
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.New("secretstore: key must be 32 bytes, hex or base64")
	}
	if len(b) != 32 {
		return nil, errors.Errorf("secretstore: key must be 32 bytes, got %d", len(b))
	}
	return b, nil
}
