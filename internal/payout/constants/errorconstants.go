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

package constants

import (
	"github.com/asgardeo/payoutwidget/internal/system/error/apierror"
	"github.com/asgardeo/payoutwidget/internal/system/error/serviceerror"
)

// Client error structs

var APIErrorRequestJSONDecodeError = apierror.ErrorResponse{
	Code:        "PFS-60001",
	Message:     "Invalid request payload",
	Description: "Failed to decode request payload",
}

var ErrorInvalidFlowID = serviceerror.ServiceError{
	Code:             "PFS-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Invalid or expired flow ID provided in the request",
}

var ErrorUnsupportedAction = serviceerror.ServiceError{
	Code:             "PFS-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Unsupported action for the payout flow",
}

var ErrorInvalidConfiguration = serviceerror.ServiceError{
	Code:             "PFS-60004",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid configuration",
	ErrorDescription: "The widget configuration is invalid",
}

var ErrorInvalidConfigKey = serviceerror.ServiceError{
	Code:             "PFS-60005",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Configuration key is required",
}

var ErrorProgrammingMisuse = serviceerror.ServiceError{
	Code:             "PFS-60006",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "The action is not valid in the current flow state",
}

var ErrorInvalidEmailRequest = serviceerror.ServiceError{
	Code:             "PFS-60007",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "Recipient and subject are required",
}

var ErrorMissingActionInput = serviceerror.ServiceError{
	Code:             "PFS-60008",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid request",
	ErrorDescription: "A required input of the action is missing",
}

// Server error structs

var ErrorRetrievingSession = serviceerror.ServiceError{
	Code:             "PFS-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error while retrieving the flow session",
}

var ErrorStoringSession = serviceerror.ServiceError{
	Code:             "PFS-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error while storing the flow session",
}

var ErrorRenderingView = serviceerror.ServiceError{
	Code:             "PFS-65003",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error while rendering the current step",
}

var ErrorPersistingConfiguration = serviceerror.ServiceError{
	Code:             "PFS-65004",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error while persisting the widget configuration",
}

var ErrorRetrievingConfiguration = serviceerror.ServiceError{
	Code:             "PFS-65005",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Error while retrieving the widget configuration",
}
