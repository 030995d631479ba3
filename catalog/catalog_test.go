package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultShopsForLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		t.Run(lang, func(t *testing.T) {
			shops := DefaultShopsForLanguage(lang)
			require.NotEmpty(t, shops)

			names := make(map[string]struct{})
			ids := make(map[string]struct{})
			for _, shop := range shops {
				require.Equal(t, lang, shop.Language)
				require.True(t, shop.IsOriginal)
				require.False(t, shop.IsCustom)
				require.NotEmpty(t, shop.Name)
				require.NotEmpty(t, shop.Icon)
				require.True(t, shop.CreatedAt.IsZero(), "timestamps are stamped by the store")

				_, dup := names[shop.Name]
				require.False(t, dup, "duplicate name %q", shop.Name)
				names[shop.Name] = struct{}{}

				_, dup = ids[shop.ID]
				require.False(t, dup, "duplicate id %q", shop.ID)
				ids[shop.ID] = struct{}{}
			}
		})
	}
}

func TestDefaultShopsForUnknownLanguage(t *testing.T) {
	require.Empty(t, DefaultShopsForLanguage("xx"))
}

func TestDefaultShopsReturnsFreshValues(t *testing.T) {
	first := DefaultShopsForLanguage("en")
	first[0].Name = "mutated"
	second := DefaultShopsForLanguage("en")
	require.NotEqual(t, "mutated", second[0].Name)
}
