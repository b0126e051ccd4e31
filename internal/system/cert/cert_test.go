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

package cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/payoutwidget/internal/system/config"
)

type CertTestSuite struct {
	suite.Suite
	home string
	cfg  *config.Config
}

func TestCertSuite(t *testing.T) {
	suite.Run(t, new(CertTestSuite))
}

func (suite *CertTestSuite) SetupTest() {
	suite.home = suite.T().TempDir()
	suite.cfg = &config.Config{Security: config.SecurityConfig{CertFile: "server.cert", KeyFile: "server.key"}}
}

// writeKeyPair writes a self-signed certificate and its key into the server home.
func (suite *CertTestSuite) writeKeyPair() {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	suite.Require().NoError(err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:     []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	suite.Require().NoError(err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	suite.Require().NoError(err)

	suite.writePEM("server.cert", "CERTIFICATE", der)
	suite.writePEM("server.key", "EC PRIVATE KEY", keyDER)
}

func (suite *CertTestSuite) writePEM(name, blockType string, der []byte) {
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.home, name), data, 0o600))
}

func (suite *CertTestSuite) TestGetTLSConfig() {
	suite.writeKeyPair()

	tlsConfig, err := GetTLSConfig(suite.cfg, suite.home)

	suite.Require().NoError(err)
	suite.Len(tlsConfig.Certificates, 1)
	suite.Equal(uint16(tls.VersionTLS12), tlsConfig.MinVersion)
}

func (suite *CertTestSuite) TestMissingCertificate() {
	_, err := GetTLSConfig(suite.cfg, suite.home)
	suite.ErrorContains(err, "certificate file not found")
}

func (suite *CertTestSuite) TestMissingKey() {
	suite.writeKeyPair()
	suite.Require().NoError(os.Remove(filepath.Join(suite.home, "server.key")))

	_, err := GetTLSConfig(suite.cfg, suite.home)
	suite.ErrorContains(err, "key file not found")
}

func (suite *CertTestSuite) TestInvalidKeyPair() {
	suite.writePEM("server.cert", "CERTIFICATE", []byte("not a certificate"))
	suite.writePEM("server.key", "EC PRIVATE KEY", []byte("not a key"))

	_, err := GetTLSConfig(suite.cfg, suite.home)
	suite.ErrorContains(err, "load key pair")
}
