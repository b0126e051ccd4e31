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

package configstore

import (
	"github.com/asgardeo/payoutwidget/internal/system/database/model"
)

var (
	// QueryCreateConfigTable creates the widget configuration table if it does not exist.
	QueryCreateConfigTable = model.DBQuery{
		ID: "PCQ-WIDGET_CFG-00",
		Query: "CREATE TABLE IF NOT EXISTS WIDGET_CONFIG (" +
			"CONFIG_KEY VARCHAR(255) PRIMARY KEY, " +
			"CONFIG_VALUE TEXT NOT NULL, " +
			"UPDATED_AT TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
	}

	// QueryGetConfig is the query to get a configuration blob by key.
	QueryGetConfig = model.DBQuery{
		ID:    "PCQ-WIDGET_CFG-01",
		Query: "SELECT CONFIG_KEY, CONFIG_VALUE, UPDATED_AT FROM WIDGET_CONFIG WHERE CONFIG_KEY = $1",
	}

	// QueryUpsertConfig is the query to create or replace a configuration blob.
	QueryUpsertConfig = model.DBQuery{
		ID: "PCQ-WIDGET_CFG-02",
		Query: "INSERT INTO WIDGET_CONFIG (CONFIG_KEY, CONFIG_VALUE, UPDATED_AT) " +
			"VALUES ($1, $2, CURRENT_TIMESTAMP) " +
			"ON CONFLICT (CONFIG_KEY) DO UPDATE SET CONFIG_VALUE = excluded.CONFIG_VALUE, " +
			"UPDATED_AT = CURRENT_TIMESTAMP",
	}

	// QueryDeleteConfig is the query to delete a configuration blob.
	QueryDeleteConfig = model.DBQuery{
		ID:    "PCQ-WIDGET_CFG-03",
		Query: "DELETE FROM WIDGET_CONFIG WHERE CONFIG_KEY = $1",
	}
)
