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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/asgardeo/payoutwidget/internal/system/constants"
	"github.com/asgardeo/payoutwidget/internal/system/log"
)

// maxRequestBodyBytes bounds the size of decoded JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody decodes the JSON body of the request into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	var data T
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&data); err != nil {
		return nil, errors.New("failed to decode request body: " + err.Error())
	}
	return &data, nil
}

// WriteJSON writes the value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
	}
}

// SanitizeString trims surrounding whitespace and drops control characters.
func SanitizeString(input string) string {
	trimmed := strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, trimmed)
}

// SanitizeStringMap sanitizes every key and value of the map.
func SanitizeStringMap(input map[string]string) map[string]string {
	if input == nil {
		return nil
	}
	sanitized := make(map[string]string, len(input))
	for key, value := range input {
		sanitized[SanitizeString(key)] = SanitizeString(value)
	}
	return sanitized
}
