// Package locale serves translated user-facing strings from catalogs
// embedded in the binary.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used until Load is called
const DefaultLanguage = "en"

const domain = "default"

// ErrUnknownLanguage is returned when no catalog exists for a language
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*/default.po
var catalogs embed.FS

var (
	mu       sync.RWMutex
	current  *gotext.Locale
	language string
)

func init() {
	if err := Load(DefaultLanguage); err != nil {
		panic(err)
	}
}

// Load switches the active catalog to lang
func Load(lang string) error {
	data, err := catalogs.ReadFile(path.Join("locales", lang, domain+".po"))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)

	mu.Lock()
	current = l
	language = lang
	mu.Unlock()
	return nil
}

// Language returns the active language code
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return language
}

// Get returns the translation for key formatted with vars.
// Keys without a translation are formatted as-is.
func Get(key string, vars ...interface{}) string {
	mu.RLock()
	l := current
	mu.RUnlock()
	return l.Get(key, vars...)
}
