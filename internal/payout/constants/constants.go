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

// Package constants defines the identifiers used by the payout onboarding flow.
package constants

// StepID identifies one screen of the onboarding sequence.
type StepID string

const (
	// StepProfile collects the recipient profile.
	StepProfile StepID = "profile"
	// StepPayout lets the recipient pick a payout method.
	StepPayout StepID = "payout"
	// StepBank verifies the recipient bank account.
	StepBank StepID = "bank"
	// StepTax collects the tax form.
	StepTax StepID = "tax"
	// StepKYC collects identity verification documents.
	StepKYC StepID = "kyc"
	// StepMethodDetail is reported while the payout step captures method details.
	StepMethodDetail StepID = "methodDetail"
	// StepDashboard is reported once the flow is complete.
	StepDashboard StepID = "dashboard"
)

// ConfigurableSteps lists the steps a host may enable, in their canonical order.
var ConfigurableSteps = []StepID{StepProfile, StepPayout, StepBank, StepTax, StepKYC}

// PayoutMethod identifies a disbursement channel.
type PayoutMethod string

const (
	MethodBankTransfer    PayoutMethod = "bankTransfer"
	MethodCrypto          PayoutMethod = "crypto"
	MethodDigitalWallet   PayoutMethod = "digitalWallet"
	MethodCardPayment     PayoutMethod = "cardPayment"
	MethodPrepaidCard     PayoutMethod = "prepaidCard"
	MethodGiftCard        PayoutMethod = "giftCard"
	MethodAdvancedPayment PayoutMethod = "advancedPayment"
	MethodEarlyAccess     PayoutMethod = "earlyAccess"
)

// BasePayoutMethods are enabled by the default configuration.
var BasePayoutMethods = []PayoutMethod{
	MethodBankTransfer,
	MethodCrypto,
	MethodDigitalWallet,
	MethodCardPayment,
	MethodPrepaidCard,
	MethodGiftCard,
}

// AllPayoutMethods lists every payout method the flow understands.
var AllPayoutMethods = []PayoutMethod{
	MethodBankTransfer,
	MethodCrypto,
	MethodDigitalWallet,
	MethodCardPayment,
	MethodPrepaidCard,
	MethodGiftCard,
	MethodAdvancedPayment,
	MethodEarlyAccess,
}

// RecipientType classifies the payee.
type RecipientType string

const (
	RecipientVendor     RecipientType = "vendor"
	RecipientInsured    RecipientType = "insured"
	RecipientIndividual RecipientType = "individual"
	RecipientBusiness   RecipientType = "business"
	RecipientContractor RecipientType = "contractor"
)

// AllRecipientTypes lists every recipient type.
var AllRecipientTypes = []RecipientType{
	RecipientVendor,
	RecipientInsured,
	RecipientIndividual,
	RecipientBusiness,
	RecipientContractor,
}

// AdvanceTier is the share of pending funds released early.
type AdvanceTier string

const (
	AdvanceTier70  AdvanceTier = "70%"
	AdvanceTier85  AdvanceTier = "85%"
	AdvanceTier100 AdvanceTier = "100%"
)

// AdvanceTiers lists the tiers offered by advance payout methods.
var AdvanceTiers = []AdvanceTier{AdvanceTier70, AdvanceTier85, AdvanceTier100}

// VerificationStatus tracks the simulated bank verification.
type VerificationStatus string

const (
	VerificationIdle     VerificationStatus = "idle"
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

// FlowStatus defines the status of a flow execution.
type FlowStatus string

const (
	// FlowStatusComplete indicates the flow reached the dashboard.
	FlowStatusComplete FlowStatus = "COMPLETE"
	// FlowStatusIncomplete indicates the flow is still on an onboarding step.
	FlowStatusIncomplete FlowStatus = "INCOMPLETE"
)

// ActionID names a client action posted back to the flow.
type ActionID string

const (
	ActionNext         ActionID = "next"
	ActionBack         ActionID = "back"
	ActionSelectMethod ActionID = "select_method"
	ActionSelectOption ActionID = "select_option"
	ActionSelectTier   ActionID = "select_tier"
	ActionVerifyBank   ActionID = "verify_bank"
	ActionChangeMethod ActionID = "change_method"
	ActionRestart      ActionID = "restart"
	ActionComplete     ActionID = "complete"
	ActionUpload       ActionID = "upload_document"
)

const (
	// InputMethod carries the payout method of a select_method action.
	InputMethod = "method"
	// InputOption carries the detail option of a select_option action.
	InputOption = "option"
	// InputTier carries the advance tier of a select_tier action.
	InputTier = "tier"
)

const (
	// OperationBankVerification names the simulated bank verification operation.
	OperationBankVerification = "bank_verification"
	// OperationDocumentUpload names the simulated identity document upload.
	OperationDocumentUpload = "document_upload"
)
