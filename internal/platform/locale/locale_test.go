// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsdesk/internal/platform/locale"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"en", "en"},
		{"DE", "de"},
		{"de-at", "de-AT"},
		{" fr ", "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := locale.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	_, err := locale.Normalize("")
	assert.Error(t, err)

	_, err = locale.Normalize("not a locale!")
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	set, err := locale.NewSet([]string{"en", "de", "EN"}, "en")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "de"}, set.List())
	assert.Equal(t, "en", set.Default())
	assert.True(t, set.Contains("DE"))
	assert.False(t, set.Contains("fr"))
}

func TestSet_DefaultMustBeConfigured(t *testing.T) {
	_, err := locale.NewSet([]string{"de"}, "en")
	assert.Error(t, err)
}

func TestSet_Resolve(t *testing.T) {
	set := locale.MustSet([]string{"en", "de"}, "en")

	code, ok := set.Resolve("")
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	code, ok = set.Resolve("De")
	assert.True(t, ok)
	assert.Equal(t, "de", code)

	_, ok = set.Resolve("fr")
	assert.False(t, ok)
}
