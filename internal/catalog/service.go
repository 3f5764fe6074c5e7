package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"botscope/internal/utils"
)

var ErrNotFound = errors.New("bot not found")

// Service loads the catalog once and serves it from memory until Reload.
type Service struct {
	source Source

	mu      sync.RWMutex
	entries []BotEntry
	version string
	loaded  bool
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Entries returns a copy of the catalog and its version fingerprint.
func (s *Service) Entries(ctx context.Context) ([]BotEntry, string, error) {
	s.mu.RLock()
	if s.loaded {
		out := cloneAll(s.entries)
		version := s.version
		s.mu.RUnlock()
		return out, version, nil
	}
	s.mu.RUnlock()

	if err := s.Reload(ctx); err != nil {
		return nil, "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.entries), s.version, nil
}

func (s *Service) Reload(ctx context.Context) error {
	raw, err := s.source.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog load: %w", err)
	}

	entries := Normalize(raw)
	version, err := fingerprint(entries)
	if err != nil {
		return fmt.Errorf("catalog fingerprint: %w", err)
	}

	s.mu.Lock()
	s.entries = entries
	s.version = version
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Get looks an entry up by id or slug.
func (s *Service) Get(ctx context.Context, key string) (BotEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return BotEntry{}, ErrNotFound
	}
	entries, _, err := s.Entries(ctx)
	if err != nil {
		return BotEntry{}, err
	}
	for _, e := range entries {
		if e.ID == key || e.Slug == key {
			return e, nil
		}
	}
	return BotEntry{}, ErrNotFound
}

// Facets counts languages and tags in order of first appearance.
func (s *Service) Facets(ctx context.Context) (Facets, error) {
	entries, _, err := s.Entries(ctx)
	if err != nil {
		return Facets{}, err
	}
	return Facets{
		Languages: countFacet(entries, func(e BotEntry) []string { return e.Languages }),
		Tags:      countFacet(entries, func(e BotEntry) []string { return e.Tags }),
		Total:     len(entries),
	}, nil
}

// Normalize fills derived fields: rank follows list position, slug comes from the title,
// ratings are clamped into [0,5] and votes are never negative. Slugs are unique within
// the result; later duplicates get a -2, -3, ... suffix.
func Normalize(raw []BotEntry) []BotEntry {
	out := make([]BotEntry, 0, len(raw))
	taken := make(map[string]bool, len(raw))
	for i, e := range raw {
		e = e.Clone()
		e.ID = strings.TrimSpace(e.ID)
		e.Rank = i + 1
		if e.Slug == "" {
			e.Slug = utils.Slugify(e.Title)
		}
		if e.Slug == "" {
			e.Slug = fallbackSlug(e)
		}
		e.Slug = uniqueSlug(e.Slug, taken)
		taken[e.Slug] = true
		e.Rating = ClampRating(e.Rating)
		if e.Votes < 0 {
			e.Votes = 0
		}
		out = append(out, e)
	}
	return out
}

// fallbackSlug names entries whose title has no latin letters or digits.
func fallbackSlug(e BotEntry) string {
	if id := utils.Slugify(e.ID); id != "" {
		return "bot-" + id
	}
	return fmt.Sprintf("bot-%d", e.Rank)
}

func uniqueSlug(slug string, taken map[string]bool) string {
	if !taken[slug] {
		return slug
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

func ClampRating(n int) int {
	if n < MinRating {
		return MinRating
	}
	if n > MaxRating {
		return MaxRating
	}
	return n
}

func countFacet(entries []BotEntry, values func(BotEntry) []string) []FacetItem {
	items := make([]FacetItem, 0)
	index := make(map[string]int)
	for _, e := range entries {
		seen := make(map[string]struct{})
		for _, v := range values(e) {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if i, ok := index[v]; ok {
				items[i].Count++
				continue
			}
			index[v] = len(items)
			items = append(items, FacetItem{Name: v, Count: 1})
		}
	}
	return items
}

func cloneAll(entries []BotEntry) []BotEntry {
	out := make([]BotEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Clone())
	}
	return out
}

func fingerprint(entries []BotEntry) (string, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8]), nil
}
