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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, MatchLocale("en-US"))
	assert.Equal(t, language.Spanish, MatchLocale("es"))
	assert.Equal(t, language.AmericanEnglish, MatchLocale("not a locale!"))
}

func TestPrinterText(t *testing.T) {
	en := NewPrinter("en-US")
	assert.Equal(t, "Select a payout method to continue", en.Text(KeySelectMethodFirst))
	assert.Equal(t, "Payouts will be sent via Bank transfer",
		en.Text(KeyFlowCompleteDescription, en.Text(MethodLabelKey("bankTransfer"))))

	es := NewPrinter("es")
	assert.Equal(t, "Tarjeta de regalo", es.Text(MethodLabelKey("giftCard")))
}

func TestPrinterMoney(t *testing.T) {
	en := NewPrinter("en-US")
	assert.Contains(t, en.Money(1000), "1,000")
}

func TestEveryTranslationIsComplete(t *testing.T) {
	for key, tr := range translations {
		assert.NotEmpty(t, tr.en, "missing english text for %s", key)
		assert.NotEmpty(t, tr.es, "missing spanish text for %s", key)
	}
}
