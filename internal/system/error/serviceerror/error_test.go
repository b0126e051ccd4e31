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

package serviceerror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDescriptionReturnsCopy(t *testing.T) {
	base := ServiceError{Code: "PFS-60001", Type: ClientErrorType, Error: "Invalid request",
		ErrorDescription: "original"}

	described := base.WithDescription("method input is required")

	assert.Equal(t, "method input is required", described.ErrorDescription)
	assert.Equal(t, "original", base.ErrorDescription)
	assert.Equal(t, base.Code, described.Code)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ServiceError{Type: ClientErrorType}.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ServiceError{Type: ServerErrorType}.HTTPStatus())
}
