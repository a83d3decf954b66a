package kv

import (
	"context"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type levelStore struct {
	db *leveldb.DB
}

// OpenLevelDB opens (or creates) a LevelDB directory at path.
func OpenLevelDB(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &levelStore{db: db}, nil
}

func (l *levelStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, err := l.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (l *levelStore) Put(_ context.Context, key string, value []byte) error {
	return l.db.Put([]byte(key), value, &opt.WriteOptions{Sync: true})
}

func (l *levelStore) Close() error {
	return l.db.Close()
}
