// This file is Free Software under the MIT License
// without warranty, see README.md and LICENSES/MIT.txt for details.
//
// SPDX-License-Identifier: MIT
//
// SPDX-FileCopyrightText: 2024 German Federal Office for Information Security (BSI) <https://www.bsi.bund.de>
// Software-Engineering: 2024 Intevation GmbH <https://intevation.de>

package client

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"

	bolt "go.etcd.io/bbolt"

	"github.com/csaf-poc/csaf_webview/csaf"
)

var (
	viewModelsBucket = []byte("viewmodels")
	versionOfBucket  = []byte("1")
)

var errNotFound = errors.New("not found")

// cache implements a key value storage.
type cache interface {
	get(key []byte) (*csaf.DocModel, error)
	set(key []byte, model *csaf.DocModel) error
	Close() error
}

// ViewModelCache derives view models from raw advisories and keeps
// the results in a local store to avoid recomputation. The zero value
// works without a store.
type ViewModelCache struct {
	cache cache
}

// OpenViewModelCache opens a view model cache. An empty config means
// no persistent caching.
func OpenViewModelCache(config string) (*ViewModelCache, error) {
	cache, err := prepareCache(config)
	if err != nil {
		return nil, err
	}
	return &ViewModelCache{cache: cache}, nil
}

// Close closes the underlying store.
func (vmc *ViewModelCache) Close() error {
	if vmc.cache != nil {
		return vmc.cache.Close()
	}
	return nil
}

// key calculates the cache key for an advisory document.
func key(doc csaf.RawAdvisory) ([]byte, error) {
	h := sha256.New()
	if err := json.NewEncoder(h).Encode(map[string]any(doc)); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

// Convert returns the view model of the given advisory, from the
// store if a previous conversion of the same document is cached.
func (vmc *ViewModelCache) Convert(doc csaf.RawAdvisory) (*csaf.DocModel, error) {
	var k []byte

	if vmc.cache != nil {
		var err error
		if k, err = key(doc); err != nil {
			return nil, err
		}
		model, err := vmc.cache.get(k)
		if err != errNotFound {
			if err != nil {
				return nil, err
			}
			return model, nil
		}
	}

	model := csaf.ConvertToDocModel(doc)

	if vmc.cache != nil {
		if err := vmc.cache.set(k, model); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// prepareCache sets up the cache if it is configured.
func prepareCache(config string) (cache, error) {
	if config == "" {
		return nil, nil
	}

	db, err := bolt.Open(config, 0600, nil)
	if err != nil {
		return nil, err
	}

	// Create the bucket.
	if err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(viewModelsBucket)
		if err != nil {
			return err
		}
		v := b.Get([]byte("version"))

		// if version is wrong or nonexistent, start over
		if !bytes.Equal(v, versionOfBucket) {
			if err := tx.DeleteBucket(viewModelsBucket); err != nil {
				return err
			}
			c, err := tx.CreateBucket(viewModelsBucket)
			if err != nil {
				return err
			}
			if err := c.Put([]byte("version"), versionOfBucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return boltCache{db}, nil
}

// boltCache is a cache implementation based on the bolt datastore.
type boltCache struct{ *bolt.DB }

// get implements the fetch part of the cache interface.
func (bc boltCache) get(key []byte) (model *csaf.DocModel, err error) {
	err2 := bc.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(viewModelsBucket)
		v := b.Get(key)
		if v == nil {
			err = errNotFound
		} else if err3 := json.Unmarshal(v, &model); err3 != nil {
			err = err3
		}
		return nil
	})
	if err2 != nil {
		err = err2
	}
	return
}

// set implements the store part of the cache interface.
func (bc boltCache) set(key []byte, model *csaf.DocModel) error {
	return bc.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(viewModelsBucket)
		modelBytes, err := json.Marshal(model)
		if err != nil {
			return err
		}
		return b.Put(key, modelBytes)
	})
}
