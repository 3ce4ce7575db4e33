// Package kv is the key-value storage layer. Every collection is stored
// under one key as JSON text and always read and written whole.
package kv

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// Backend is a string key-value store.
type Backend interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// ReadCollection decodes the collection stored under key. An absent key or
// content that is not a JSON array yields an empty collection, and elements
// that do not decode as T are skipped. Only backend failures are returned as
// errors.
func ReadCollection[T any](b Backend, key string) ([]T, error) {
	raw, ok, err := b.Get(key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	items := []T{}
	if !ok || strings.TrimSpace(raw) == "" {
		return items, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		log.Printf("warning: %s is not a valid collection, treating as empty: %v", key, err)
		return items, nil
	}
	for i, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			log.Printf("warning: skipping %s[%d]: %v", key, i, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteCollection replaces the collection stored under key.
func WriteCollection[T any](b Backend, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	if err := b.Set(key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// ReadValue decodes a single JSON value. ok is false when the key is absent
// or its content does not parse.
func ReadValue[T any](b Backend, key string) (T, bool, error) {
	var v T
	raw, ok, err := b.Get(key)
	if err != nil {
		return v, false, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return v, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("warning: %s is not valid JSON, ignoring: %v", key, err)
		var zero T
		return zero, false, nil
	}
	return v, true, nil
}

func WriteValue[T any](b Backend, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	if err := b.Set(key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
