package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/entity"
)

type ConnectionProvider interface {
	GetConnection() *pg.DB
}

type DbCredentials struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string
}

type connectionProviderImpl struct {
	creds DbCredentials
	db    *pg.DB
	once  sync.Once
}

func NewConnectionProvider(creds DbCredentials) ConnectionProvider {
	return &connectionProviderImpl{creds: creds}
}

func (c *connectionProviderImpl) GetConnection() *pg.DB {
	c.once.Do(func() {
		opts := &pg.Options{
			Addr:     fmt.Sprintf("%s:%d", c.creds.Host, c.creds.Port),
			User:     c.creds.Username,
			Password: c.creds.Password,
			Database: c.creds.Database,
			PoolSize: 20,
		}
		if c.creds.SSLMode == "require" {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
		}
		c.db = pg.Connect(opts)
		log.Infof("Database connection configured for %s/%s", opts.Addr, opts.Database)
	})
	return c.db
}

var schemaModels = []interface{}{
	(*entity.User)(nil),
	(*entity.Task)(nil),
	(*entity.VaultEntry)(nil),
	(*entity.Reminder)(nil),
}

var schemaIndexes = []string{
	`CREATE INDEX IF NOT EXISTS task_user_id_idx ON task (user_id)`,
	`CREATE INDEX IF NOT EXISTS vault_entry_user_id_idx ON vault_entry (user_id)`,
	`CREATE INDEX IF NOT EXISTS reminder_user_id_idx ON reminder (user_id)`,
	`CREATE INDEX IF NOT EXISTS reminder_due_idx ON reminder (status, due_at)`,
}

// CreateSchema creates missing tables and indexes. Existing tables are left
// untouched.
func CreateSchema(ctx context.Context, cp ConnectionProvider) error {
	conn := cp.GetConnection()
	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}
	for _, model := range schemaModels {
		err := conn.ModelContext(ctx, model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	for _, stmt := range schemaIndexes {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	log.Debugf("Database schema is ready")
	return nil
}
