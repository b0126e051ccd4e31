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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/asgardeo/payoutwidget/internal/system/config"
	"github.com/asgardeo/payoutwidget/internal/system/database/client"
	"github.com/asgardeo/payoutwidget/internal/system/database/model"
	"github.com/asgardeo/payoutwidget/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dbClient client.DBClientInterface
	mutex    sync.Mutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns the configuration database client, opening the connection on first use.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.dbClient != nil {
		return d.dbClient, nil
	}

	runtime := config.GetPayoutRuntime()
	dbClient, err := openClient(runtime.Config.Database.Config, runtime.ServerHome)
	if err != nil {
		return nil, err
	}
	d.dbClient = dbClient
	return d.dbClient, nil
}

// Close closes the underlying connection pool if it was opened.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.dbClient == nil {
		return nil
	}
	err := d.dbClient.Close()
	d.dbClient = nil
	return err
}

// openClient opens a connection pool for the data source and wraps it in a client.
func openClient(dataSource config.DataSource, serverHome string) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := getDBConfig(dataSource, serverHome)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)
	}

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dataSource.Name, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}

	logger.Debug("Database connection established", log.String("type", dbConfig.driverName))
	return client.NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSource, serverHome string) (dbConfig, error) {
	switch dataSource.Type {
	case dataSourceTypePostgres:
		return dbConfig{
			driverName: dataSourceTypePostgres,
			dsn: fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode),
		}, nil
	case dataSourceTypeSQLite, "":
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if dbPath == "" {
			dbPath = "repository/database/payout.db"
		}
		return dbConfig{
			driverName: dataSourceTypeSQLite,
			dsn:        fmt.Sprintf("%s%s", path.Join(serverHome, dbPath), options),
		}, nil
	default:
		return dbConfig{}, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}
}
