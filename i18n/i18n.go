// Package i18n carries the English/Tamil language preference as an explicit
// context object. The saved preference lives in an injected key-value store
// rather than a package-level global, so callers control where it persists.
package i18n

import (
	"fmt"
	"sync"
)

type Language string

const (
	English Language = "en"
	Tamil   Language = "ta"
)

const prefKey = "restaurant-language"

// userPrefKey scopes a saved preference to one user, so one person's choice
// never changes what anyone else sees.
func userPrefKey(userID uint) string {
	return fmt.Sprintf("%s:%d", prefKey, userID)
}

// Store persists the language preference.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is the default in-process Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Translator resolves display strings for one language. Each Translator
// persists under its own store key, so preferences can be scoped per user.
type Translator struct {
	lang  Language
	store Store
	key   string
}

// Load builds a Translator from the shared saved preference, defaulting to
// English.
func Load(store Store) *Translator {
	return loadKey(store, prefKey)
}

// LoadForUser builds a Translator from one user's saved preference. A
// SetLanguage on the result persists for that user only.
func LoadForUser(store Store, userID uint) *Translator {
	return loadKey(store, userPrefKey(userID))
}

func loadKey(store Store, key string) *Translator {
	lang := English
	if v, ok := store.Get(key); ok && Language(v) == Tamil {
		lang = Tamil
	}
	return &Translator{lang: lang, store: store, key: key}
}

// ForLanguage builds a Translator pinned to an explicit language, e.g. taken
// from a request field.
func ForLanguage(lang Language, store Store) *Translator {
	if lang != Tamil {
		lang = English
	}
	return &Translator{lang: lang, store: store, key: prefKey}
}

func (tr *Translator) Language() Language {
	return tr.lang
}

// SetLanguage switches the language and persists the preference.
func (tr *Translator) SetLanguage(lang Language) {
	if lang != Tamil {
		lang = English
	}
	tr.lang = lang
	tr.store.Set(tr.key, string(lang))
}

// T resolves a string. An explicit Tamil override wins; otherwise the
// built-in table is consulted; missing translations fall back to the English
// source string.
func (tr *Translator) T(english, tamil string) string {
	if tr.lang != Tamil {
		return english
	}
	if tamil != "" {
		return tamil
	}
	if v, ok := translations[english]; ok {
		return v
	}
	return english
}

// translations maps English source strings to Tamil. Strings absent here fall
// back to English.
var translations = map[string]string{
	"Total":        "மொத்த தொகை",
	"Subtotal":     "மொத்தம்",
	"Tax (5%)":     "வரி (5%)",
	"Today":        "இன்று",
	"Inventory":    "சரக்கு",
	"Expenses":     "செலவுகள்",
	"Staff":        "ஊழியர்கள்",
	"Reports":      "அறிக்கைகள்",
	"New Order":    "புதிய ஆர்டர்",
	"Low Stock":    "குறைந்த சரக்கு",
	"Out of Stock": "சரக்கு இல்லை",
	"In Stock":     "கையிருப்பு",
	"POS Billing":  "பில்லிங்",
	"QR Menu":      "QR மெனு",
}
