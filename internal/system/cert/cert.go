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

// Package cert loads the TLS configuration of the server.
package cert

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asgardeo/payoutwidget/internal/system/config"
)

// GetTLSConfig loads the server certificate and key configured relative to the server home.
func GetTLSConfig(cfg *config.Config, serverHome string) (*tls.Config, error) {
	certFilePath := filepath.Join(serverHome, cfg.Security.CertFile)
	keyFilePath := filepath.Join(serverHome, cfg.Security.KeyFile)

	if _, err := os.Stat(certFilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("certificate file not found at %s", certFilePath)
	}
	if _, err := os.Stat(keyFilePath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("key file not found at %s", keyFilePath)
	}

	certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
