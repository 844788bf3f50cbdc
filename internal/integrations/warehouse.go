package integrations

import (
	"context"
	"database/sql"
	"fmt"

	dbsql "github.com/databricks/databricks-sql-go"
	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/logger"
	"go.uber.org/zap"
)

// WarehouseQuery is the fixed statement run against the warehouse.
const WarehouseQuery = "select * from hive_metastore.jms_prod.scores_overall limit 5"

// WarehouseClient runs WarehouseQuery on a Databricks SQL warehouse.
type WarehouseClient struct {
	db  *sql.DB
	log *zap.Logger
}

// NewWarehouseClient opens a database/sql handle on the configured warehouse. No connection is
// made until the first query.
func NewWarehouseClient(cfg config.DatabricksConfig, log *zap.Logger) (*WarehouseClient, error) {
	if !cfg.Configured() {
		return nil, &ErrNotConfigured{Integration: NameWarehouse}
	}

	connector, err := dbsql.NewConnector(
		dbsql.WithServerHostname(cfg.ServerHostname),
		dbsql.WithPort(443),
		dbsql.WithHTTPPath(cfg.HTTPPath),
		dbsql.WithAccessToken(cfg.AccessToken),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Databricks connector: %w", err)
	}

	return NewWarehouseClientWith(sql.OpenDB(connector), log), nil
}

// NewWarehouseClientWith wraps an existing database handle.
func NewWarehouseClientWith(db *sql.DB, log *zap.Logger) *WarehouseClient {
	return &WarehouseClient{
		db:  db,
		log: logger.WithIntegration(log, NameWarehouse, "", ""),
	}
}

// Query runs WarehouseQuery and returns each row as a column to value map.
func (c *WarehouseClient) Query(ctx context.Context) ([]map[string]any, error) {
	rows, err := c.db.QueryContext(ctx, WarehouseQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to execute warehouse query: %w", err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, err
	}

	c.log.Info("warehouse query completed", zap.Int("rows", len(result)))
	return result, nil
}

// Close releases the connection pool.
func (c *WarehouseClient) Close() error {
	return c.db.Close()
}

type rowScanner interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanRows(rows rowScanner) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return result, nil
}
