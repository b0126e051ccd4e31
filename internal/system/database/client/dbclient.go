/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package client provides the database client used by the storage layers.
package client

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/asgardeo/payoutwidget/internal/system/database/model"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	// Query runs a query that returns rows. Each row maps lower-cased column names to values.
	Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// Execute runs a statement and returns the number of affected rows.
	Execute(query model.DBQuery, args ...interface{}) (int64, error)
	// Close closes the database connection.
	Close() error
}

// DBClient runs identified queries against one database, choosing the SQL for its dialect.
type DBClient struct {
	db     model.DBInterface
	dbType string
	logger *log.Logger
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{
		db:     db,
		dbType: dbType,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient"),
			log.String("dbType", dbType)),
	}
}

// Query runs a query that returns rows. Errors carry the query ID.
func (client *DBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	client.logger.Debug("Executing query", log.String("queryID", query.GetID()))

	rows, err := client.db.Query(query.GetQuery(client.dbType), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", query.GetID(), err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			client.logger.Error("Error closing rows", log.String("queryID", query.GetID()), log.Error(closeErr))
		}
	}()

	results, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", query.GetID(), err)
	}
	return results, nil
}

// Execute runs a statement and returns the number of affected rows. Errors carry the query ID.
func (client *DBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	client.logger.Debug("Executing statement", log.String("queryID", query.GetID()))

	res, err := client.db.Exec(query.GetQuery(client.dbType), args...)
	if err != nil {
		return 0, fmt.Errorf("execute %s: %w", query.GetID(), err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("execute %s: %w", query.GetID(), err)
	}
	return rowsAffected, nil
}

// Close closes the database connection.
func (client *DBClient) Close() error {
	return client.db.Close()
}

// scanRows reads every row into a map keyed by lower-cased column name.
// Text returned as bytes is converted to string.
func scanRows(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			// Drivers disagree on identifier case.
			if b, ok := values[i].([]byte); ok {
				row[strings.ToLower(col)] = string(b)
				continue
			}
			row[strings.ToLower(col)] = values[i]
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
