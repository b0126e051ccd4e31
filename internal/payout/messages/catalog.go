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

package messages

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

type translation struct {
	en string
	es string
}

var translations = map[Key]translation{
	KeyValidationTitle:        {"Action required", "Acción requerida"},
	KeySelectMethodFirst:      {"Select a payout method to continue", "Selecciona un método de pago para continuar"},
	KeySelectWalletProvider:   {"Select a wallet provider to continue", "Selecciona un proveedor de billetera para continuar"},
	KeySelectCardNetwork:      {"Select a card network to continue", "Selecciona una red de tarjeta para continuar"},
	KeySelectGiftCardRetailer: {"Select a gift card retailer to continue", "Selecciona un comercio de tarjeta de regalo para continuar"},
	KeyMethodNotEnabled:       {"The payout method %s is not available", "El método de pago %s no está disponible"},
	KeyTierNotApplicable:      {"Advance tiers only apply to advance payouts", "Los niveles de anticipo solo aplican a pagos anticipados"},
	KeyNoMethodSelected:       {"Select a payout method before choosing an option", "Selecciona un método de pago antes de elegir una opción"},
	KeyUnknownOption:          {"The option %s is not offered for this payout method", "La opción %s no se ofrece para este método de pago"},
	KeyActionNotAvailable:     {"This action is not available on the current step", "Esta acción no está disponible en el paso actual"},

	KeyFlowCompleteTitle:       {"You're all set", "Todo listo"},
	KeyFlowCompleteDescription: {"Payouts will be sent via %s", "Los pagos se enviarán mediante %s"},
	KeyBankVerificationStarted: {"Verifying your bank account", "Verificando tu cuenta bancaria"},
	KeyBankVerifiedTitle:       {"Bank account verified", "Cuenta bancaria verificada"},
	KeyBankVerifiedDescription: {"Your bank account is ready to receive payouts", "Tu cuenta bancaria está lista para recibir pagos"},

	KeyActionNext:     {"Continue", "Continuar"},
	KeyActionBack:     {"Back", "Atrás"},
	KeyActionFinish:   {"Finish", "Finalizar"},
	KeyActionComplete: {"Confirm payout method", "Confirmar método de pago"},
	KeyActionVerify:   {"Verify account", "Verificar cuenta"},
	KeyActionChange:   {"Change payout method", "Cambiar método de pago"},
	KeyActionRestart:  {"Start over", "Empezar de nuevo"},

	KeyPreviewAmount: {"Pending amount", "Monto pendiente"},
	KeyPreviewFee:    {"Fee (%d%%)", "Comisión (%d%%)"},
	KeyPreviewNet:    {"You receive", "Recibes"},

	StepTitleKey("profile"):            {"Your profile", "Tu perfil"},
	StepDescriptionKey("profile"):      {"Tell us who is getting paid", "Cuéntanos quién recibe el pago"},
	StepTitleKey("payout"):             {"Payout method", "Método de pago"},
	StepDescriptionKey("payout"):       {"Choose how you want to be paid", "Elige cómo quieres recibir el pago"},
	StepTitleKey("bank"):               {"Bank account", "Cuenta bancaria"},
	StepDescriptionKey("bank"):         {"Add and verify your bank account", "Agrega y verifica tu cuenta bancaria"},
	StepTitleKey("tax"):                {"Tax information", "Información fiscal"},
	StepDescriptionKey("tax"):          {"Provide your tax form", "Proporciona tu formulario fiscal"},
	StepTitleKey("kyc"):                {"Identity verification", "Verificación de identidad"},
	StepDescriptionKey("kyc"):          {"Upload an identity document", "Sube un documento de identidad"},
	StepTitleKey("methodDetail"):       {"Payout details", "Detalles del pago"},
	StepDescriptionKey("methodDetail"): {"Complete the details for %s", "Completa los detalles de %s"},
	StepTitleKey("dashboard"):          {"Payout dashboard", "Panel de pagos"},
	StepDescriptionKey("dashboard"):    {"Payouts are sent via %s", "Los pagos se envían mediante %s"},

	MethodLabelKey("bankTransfer"):          {"Bank transfer", "Transferencia bancaria"},
	MethodDescriptionKey("bankTransfer"):    {"Direct deposit to your bank account", "Depósito directo en tu cuenta bancaria"},
	MethodLabelKey("crypto"):                {"Cryptocurrency", "Criptomoneda"},
	MethodDescriptionKey("crypto"):          {"Receive payouts to a crypto wallet", "Recibe pagos en una billetera cripto"},
	MethodLabelKey("digitalWallet"):         {"Digital wallet", "Billetera digital"},
	MethodDescriptionKey("digitalWallet"):   {"PayPal, Venmo and other wallets", "PayPal, Venmo y otras billeteras"},
	MethodLabelKey("cardPayment"):           {"Debit card", "Tarjeta de débito"},
	MethodDescriptionKey("cardPayment"):     {"Instant payout to your debit card", "Pago instantáneo a tu tarjeta de débito"},
	MethodLabelKey("prepaidCard"):           {"Prepaid card", "Tarjeta prepago"},
	MethodDescriptionKey("prepaidCard"):     {"A prepaid card issued in your name", "Una tarjeta prepago a tu nombre"},
	MethodLabelKey("giftCard"):              {"Gift card", "Tarjeta de regalo"},
	MethodDescriptionKey("giftCard"):        {"Redeem payouts as retailer gift cards", "Canjea pagos como tarjetas de regalo"},
	MethodLabelKey("advancedPayment"):       {"Advanced payment", "Pago anticipado"},
	MethodDescriptionKey("advancedPayment"): {"Get paid before the payout date for a fee", "Cobra antes de la fecha de pago con una comisión"},
	MethodLabelKey("earlyAccess"):           {"Early access", "Acceso anticipado"},
	MethodDescriptionKey("earlyAccess"):     {"Access a share of pending funds now", "Accede ahora a una parte de los fondos pendientes"},

	OptionLabelKey("paypal"):     {"PayPal", "PayPal"},
	OptionLabelKey("venmo"):      {"Venmo", "Venmo"},
	OptionLabelKey("cashApp"):    {"Cash App", "Cash App"},
	OptionLabelKey("applePay"):   {"Apple Pay", "Apple Pay"},
	OptionLabelKey("googlePay"):  {"Google Pay", "Google Pay"},
	OptionLabelKey("visa"):       {"Visa", "Visa"},
	OptionLabelKey("mastercard"): {"Mastercard", "Mastercard"},
	OptionLabelKey("amazon"):     {"Amazon", "Amazon"},
	OptionLabelKey("walmart"):    {"Walmart", "Walmart"},
	OptionLabelKey("target"):     {"Target", "Target"},
	OptionLabelKey("starbucks"):  {"Starbucks", "Starbucks"},
}

var supportedLanguages = []language.Tag{language.AmericanEnglish, language.Spanish}

var matcher = language.NewMatcher(supportedLanguages)

func buildCatalog() (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for key, t := range translations {
		if err := builder.SetString(language.AmericanEnglish, string(key), t.en); err != nil {
			return nil, err
		}
		if err := builder.SetString(language.Spanish, string(key), t.es); err != nil {
			return nil, err
		}
	}
	return builder, nil
}
