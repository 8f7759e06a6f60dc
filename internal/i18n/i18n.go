package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

// DefaultLang is used when a key is missing for the requested language.
const DefaultLang = "en"

//go:embed resources/*.json
var resourcesFS embed.FS

var (
	loadOnce     sync.Once
	loadErr      error
	translations = make(map[string]map[string]string)
)

// Init loads the embedded translation files. It is safe to call more than
// once; T calls it on first use.
func Init() error {
	loadOnce.Do(func() {
		files, err := resourcesFS.ReadDir("resources")
		if err != nil {
			loadErr = err
			return
		}
		for _, f := range files {
			if path.Ext(f.Name()) != ".json" {
				continue
			}
			lang := strings.TrimSuffix(f.Name(), ".json")
			data, err := resourcesFS.ReadFile(path.Join("resources", f.Name()))
			if err != nil {
				loadErr = err
				return
			}
			var t map[string]string
			if err := json.Unmarshal(data, &t); err != nil {
				loadErr = fmt.Errorf("parse %s: %w", f.Name(), err)
				return
			}
			translations[lang] = t
		}
	})
	return loadErr
}

// T returns the translation of key, falling back to English and then to
// the key itself.
func T(lang, key string) string {
	Init()
	if t, ok := translations[lang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	if t, ok := translations[DefaultLang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	return key
}

// Tf formats the translation of key with args.
func Tf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Supported reports whether lang has a translation file.
func Supported(lang string) bool {
	Init()
	_, ok := translations[lang]
	return ok
}

// GetAvailableLangs returns the loaded languages, sorted.
func GetAvailableLangs() []string {
	Init()
	langs := make([]string, 0, len(translations))
	for l := range translations {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}
