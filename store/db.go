package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

const intervalBucket = "intervals"

// openTimeout bounds how long opening waits for the file lock held by another
// instance.
var openTimeout = 1 * time.Second

var _ DB = (*Client)(nil)

// Client is a BoltDB database client.
type Client struct {
	db *bolt.DB
}

// NewClient opens the database at dbPath, creating it and its buckets if
// necessary. The file stays locked until Close is called.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(intervalBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	return &Client{db: db}, nil
}

func (c *Client) SaveInterval(iv *models.Interval) error {
	value, err := json.Marshal(iv)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(intervalBucket)).
			Put(timeutil.ToKey(iv.StartTime), value)
	})
}

func (c *Client) GetIntervals(
	since, until time.Time,
) ([]models.Interval, error) {
	var intervals []models.Interval

	err := c.db.View(func(tx *bolt.Tx) error {
		return forEachInRange(tx, since, until, func(k, v []byte) error {
			var iv models.Interval

			if err := json.Unmarshal(v, &iv); err != nil {
				return errDecodeInterval.Fmt(string(k)).Wrap(err)
			}

			intervals = append(intervals, iv)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return intervals, nil
}

func (c *Client) DeleteIntervals(since, until time.Time) (int, error) {
	var deleted int

	err := c.db.Update(func(tx *bolt.Tx) error {
		var keys [][]byte

		// keys are collected first as deleting while iterating a bolt cursor
		// skips entries
		err := forEachInRange(tx, since, until, func(k, _ []byte) error {
			keys = append(keys, bytes.Clone(k))
			return nil
		})
		if err != nil {
			return err
		}

		b := tx.Bucket([]byte(intervalBucket))

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		deleted = len(keys)

		return nil
	})

	return deleted, err
}

func (c *Client) Close() error {
	return c.db.Close()
}

func forEachInRange(
	tx *bolt.Tx,
	since, until time.Time,
	fn func(k, v []byte) error,
) error {
	cur := tx.Bucket([]byte(intervalBucket)).Cursor()

	lower := timeutil.ToKey(since)

	var upper []byte
	if !until.IsZero() {
		upper = timeutil.ToKey(until)
	}

	for k, v := cur.Seek(lower); k != nil; k, v = cur.Next() {
		if upper != nil && bytes.Compare(k, upper) > 0 {
			break
		}

		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	db, err := bolt.Open(
		dbPath,
		osutil.DBPermission,
		&bolt.Options{Timeout: openTimeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errRunning
		}

		return nil, errOpenDB.Fmt(dbPath).Wrap(err)
	}

	return db, nil
}
