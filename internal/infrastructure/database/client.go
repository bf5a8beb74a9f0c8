package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tursodatabase/go-libsql"
)

// Client wraps the palette store connection. When opened as an embedded
// replica it also holds the connector used to sync with the remote primary.
type Client struct {
	*sql.DB
	connector *libsql.Connector
}

// Options configures how the store is opened.
type Options struct {
	// Path is the local database file.
	Path string
	// SyncURL, when set, opens Path as an embedded replica of this primary.
	SyncURL   string
	AuthToken string
	Ping      bool
}

// Open creates the parent directory of opts.Path and opens the database.
func Open(opts Options) (*Client, error) {
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	var (
		db        *sql.DB
		connector *libsql.Connector
		err       error
	)
	if opts.SyncURL != "" {
		connector, err = libsql.NewEmbeddedReplicaConnector(opts.Path, opts.SyncURL, libsql.WithAuthToken(opts.AuthToken))
		if err != nil {
			return nil, fmt.Errorf("failed to create replica connector: %w", err)
		}
		db = sql.OpenDB(connector)
	} else {
		db, err = sql.Open("libsql", "file:"+opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	}

	// One writer at a time; the store is local and single-user.
	db.SetMaxOpenConns(1)

	if opts.Ping {
		if err := db.Ping(); err != nil {
			_ = db.Close()
			if connector != nil {
				_ = connector.Close()
			}
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	return &Client{DB: db, connector: connector}, nil
}

// IsReplica reports whether the client syncs with a remote primary.
func (c *Client) IsReplica() bool {
	return c.connector != nil
}

// Sync pushes and pulls changes with the remote primary. It is a no-op for
// plain local databases.
func (c *Client) Sync() error {
	if c.connector == nil {
		return nil
	}
	if _, err := c.connector.Sync(); err != nil {
		return fmt.Errorf("failed to sync database: %w", err)
	}
	return nil
}

// Close closes the connection pool and, for replicas, the connector.
func (c *Client) Close() error {
	err := c.DB.Close()
	if c.connector != nil {
		if cerr := c.connector.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
