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

// Package messages holds the localized text of the payout flow.
package messages

// Key identifies a message in the catalog.
type Key string

// Validation messages.
const (
	KeyValidationTitle        Key = "validation.title"
	KeySelectMethodFirst      Key = "validation.select_method_first"
	KeySelectWalletProvider   Key = "validation.select_wallet_provider"
	KeySelectCardNetwork      Key = "validation.select_card_network"
	KeySelectGiftCardRetailer Key = "validation.select_gift_card_retailer"
	KeyMethodNotEnabled       Key = "validation.method_not_enabled"
	KeyTierNotApplicable      Key = "validation.tier_not_applicable"
	KeyNoMethodSelected       Key = "validation.no_method_selected"
	KeyUnknownOption          Key = "validation.unknown_option"
	KeyActionNotAvailable     Key = "validation.action_not_available"
)

// Flow lifecycle messages.
const (
	KeyFlowCompleteTitle       Key = "flow.complete.title"
	KeyFlowCompleteDescription Key = "flow.complete.description"
	KeyBankVerificationStarted Key = "flow.bank.verification_started"
	KeyBankVerifiedTitle       Key = "flow.bank.verified.title"
	KeyBankVerifiedDescription Key = "flow.bank.verified.description"
)

// View labels.
const (
	KeyActionNext     Key = "action.next"
	KeyActionBack     Key = "action.back"
	KeyActionFinish   Key = "action.finish"
	KeyActionComplete Key = "action.complete"
	KeyActionVerify   Key = "action.verify_bank"
	KeyActionChange   Key = "action.change_method"
	KeyActionRestart  Key = "action.restart"

	KeyPreviewAmount Key = "preview.amount"
	KeyPreviewFee    Key = "preview.fee"
	KeyPreviewNet    Key = "preview.net"
)

// StepTitleKey returns the title key of a step.
func StepTitleKey(step string) Key {
	return Key("step." + step + ".title")
}

// StepDescriptionKey returns the description key of a step.
func StepDescriptionKey(step string) Key {
	return Key("step." + step + ".description")
}

// MethodLabelKey returns the label key of a payout method.
func MethodLabelKey(method string) Key {
	return Key("method." + method + ".label")
}

// MethodDescriptionKey returns the description key of a payout method.
func MethodDescriptionKey(method string) Key {
	return Key("method." + method + ".description")
}

// OptionLabelKey returns the label key of a method detail option.
func OptionLabelKey(option string) Key {
	return Key("option." + option + ".label")
}
