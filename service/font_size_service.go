package service

import (
	"context"
	"fmt"

	"market-master/domain"
	"market-master/repository"
)

var (
	fontSizeTiers  = []domain.FontSizeTier{domain.FontSizeNormal, domain.FontSizeLarge, domain.FontSizeExtraLarge}
	fontSizeLabels = []string{"Normal", "Large", "Extra Large"}
)

// FontSizeService cycles the accessibility font size through three tiers and
// remembers the choice per client.
type FontSizeService struct {
	cache repository.CacheRepository
}

func NewFontSizeService(cache repository.CacheRepository) *FontSizeService {
	return &FontSizeService{cache: cache}
}

func fontSizeKey(clientID string) string {
	return clientID + ":" + FontSizePreferenceKey
}

// tierIndex returns -1 for a stored value that is not a known tier; the next
// toggle then lands on Normal.
func (s *FontSizeService) tierIndex(ctx context.Context, clientID string) int {
	saved, ok := s.cache.Get(ctx, fontSizeKey(clientID))
	if !ok || saved == "" {
		return 0
	}
	for i, t := range fontSizeTiers {
		if string(t) == saved {
			return i
		}
	}
	return -1
}

func preferenceAt(i int) domain.FontSizePreference {
	if i < 0 {
		i = 0
	}
	return domain.FontSizePreference{
		Tier:  fontSizeTiers[i],
		Label: fontSizeLabels[i],
		Title: "Font Size: " + fontSizeLabels[i],
	}
}

func (s *FontSizeService) Current(ctx context.Context, clientID string) domain.FontSizePreference {
	return preferenceAt(s.tierIndex(ctx, clientID))
}

// Toggle advances to the next tier and stores it.
func (s *FontSizeService) Toggle(ctx context.Context, clientID string) (domain.FontSizePreference, error) {
	next := (s.tierIndex(ctx, clientID) + 1) % len(fontSizeTiers)
	pref := preferenceAt(next)
	if err := s.cache.Set(ctx, fontSizeKey(clientID), string(pref.Tier)); err != nil {
		return domain.FontSizePreference{}, fmt.Errorf("save font size preference: %w", err)
	}
	return pref, nil
}
