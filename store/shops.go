package store

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/mkubat/kapsa/catalog"
	"gitlab.com/mkubat/kapsa/ledger"
)

// AddShop creates a user shop. The shop is stamped with the current settings
// language and always marked custom, regardless of what the caller set.
func (s *Store) AddShop(ctx context.Context, shop ledger.Shop) ledger.Shop {
	now := nowUTC()
	shop.ID = uuid.NewString()
	shop.IsCustom = true
	shop.IsOriginal = false
	shop.CreatedAt = now
	shop.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	shop.Language = s.settings.Language
	s.shops = append(s.shops, shop)
	s.persistLocked(ctx)
	return shop
}

// UpdateShop replaces the shop's editable fields, preserving id, language,
// origin flag and creation time. Editing a non-original (or already custom)
// shop marks it custom; editing a built-in does not flip its origin flag.
// The shop's new display data is cascaded into the snapshot of every expense
// referencing it, so historical entries reflect the rename.
func (s *Store) UpdateShop(ctx context.Context, shop ledger.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.shops {
		existing := s.shops[i]
		if existing.ID != shop.ID {
			continue
		}
		updated := shop
		updated.ID = existing.ID
		updated.Language = existing.Language
		updated.IsOriginal = existing.IsOriginal
		updated.IsCustom = existing.IsCustom || !existing.IsOriginal
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = nowUTC()
		s.shops[i] = updated
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	now := nowUTC()
	for i := range s.expenses {
		if s.expenses[i].ShopID != shop.ID {
			continue
		}
		s.expenses[i].OriginalShopName = shop.Name
		s.expenses[i].OriginalShopIcon = shop.Icon
		s.expenses[i].OriginalShopColor = shop.Color
		s.expenses[i].UpdatedAt = now
	}

	s.persistLocked(ctx)
	return nil
}

// DeleteShop removes the shop only. Expenses referencing it keep their
// shopId; the UI falls back to the expense's shop snapshot or a generic icon
// for orphaned references.
func (s *Store) DeleteShop(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID != id {
			continue
		}
		s.shops = append(s.shops[:i], s.shops[i+1:]...)
		s.persistLocked(ctx)
		return nil
	}
	return ErrNotFound
}

// ToggleShopFavorite flips the favorite flag.
func (s *Store) ToggleShopFavorite(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID != id {
			continue
		}
		s.shops[i].IsFavorite = !s.shops[i].IsFavorite
		s.shops[i].UpdatedAt = nowUTC()
		s.persistLocked(ctx)
		return nil
	}
	return ErrNotFound
}

// ResetShopsToDefault restores the built-in shops of the active language to
// their shipped defaults, discarding in-place edits made to them. Custom
// shops and built-ins of other languages are kept as stored.
func (s *Store) ResetShopsToDefault(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	language := s.settings.Language
	kept := make([]ledger.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		if shop.IsCustom || shop.Language != language {
			kept = append(kept, shop)
		}
	}

	now := nowUTC()
	for _, shop := range catalog.DefaultShopsForLanguage(language) {
		shop.CreatedAt = now
		shop.UpdatedAt = now
		kept = append(kept, shop)
	}

	s.shops = kept
	s.persistLocked(ctx)
}
