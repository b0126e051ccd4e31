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
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/asgardeo/payoutwidget/internal/system/log"
)

var (
	sharedCatalog *catalog.Builder
	catalogOnce   sync.Once
)

func getCatalog() *catalog.Builder {
	catalogOnce.Do(func() {
		builder, err := buildCatalog()
		if err != nil {
			log.GetLogger().Fatal("Failed to build the message catalog", log.Error(err))
		}
		sharedCatalog = builder
	})
	return sharedCatalog
}

// Printer renders catalog messages and amounts for one locale.
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPrinter returns a printer for the closest supported match of the locale.
// Unknown or malformed locales resolve to American English.
func NewPrinter(locale string) *Printer {
	tag := MatchLocale(locale)
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(getCatalog())),
	}
}

// MatchLocale resolves a locale string to a supported language tag.
func MatchLocale(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.AmericanEnglish
	}
	return supportedLanguages[index]
}

// Language returns the tag the printer renders in.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Text renders the message for the key, substituting args into its verbs.
func (p *Printer) Text(key Key, args ...interface{}) string {
	return p.printer.Sprintf(string(key), args...)
}

// Money formats an amount with two decimals using the locale's digit grouping.
func (p *Printer) Money(amount float64) string {
	return p.printer.Sprintf("$%.2f", amount)
}
