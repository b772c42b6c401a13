package normalize_test

import (
	"testing"

	"github.com/solederva/feedsync/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestUnitFeatureBullets(t *testing.T) {
	tests := map[string]struct {
		name        string
		description string
		want        []string
	}{
		"no keywords": {
			name:        "MN123 Bot",
			description: "Klasik model.",
			want:        nil,
		},
		"description keywords": {
			name:        "MN123 Bot",
			description: "Vegan deri, ortopedik taban.",
			want:        []string{"Vegan deri malzeme", "Ortopedik iç taban"},
		},
		"case insensitive": {
			name:        "MN123 Bot",
			description: "KAYMAZ taban, ASTAR detayı.",
			want:        []string{"Nefes alan iç astar", "Kaymaz dış taban"},
		},
		"name keyword": {
			name:        "MN123 Günlük Bot",
			description: "",
			want:        []string{"Günlük kullanıma uygun"},
		},
		"name keyword not read from description": {
			name:        "MN123 Bot",
			description: "günlük kullanım",
			want:        nil,
		},
		"all keywords": {
			name:        "MN123 Günlük Bot",
			description: "vegan ortopedik astar kaymaz topuk",
			want: []string{
				"Vegan deri malzeme",
				"Ortopedik iç taban",
				"Nefes alan iç astar",
				"Kaymaz dış taban",
				"Konforlu topuk yastığı",
				"Günlük kullanıma uygun",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := normalize.FeatureBullets(tt.name, tt.description)

			assert.Equal(t, tt.want, got, "should extract feature bullets")
		})
	}
}

func TestUnitPrependBullets(t *testing.T) {
	bullets := []string{"Vegan deri malzeme", "Kaymaz dış taban"}
	block := "<ul><li>Vegan deri malzeme</li><li>Kaymaz dış taban</li></ul>"

	t.Run("prepended", func(t *testing.T) {
		got := normalize.PrependBullets("<p>Açıklama</p>", bullets)

		assert.Equal(t, block+"<p>Açıklama</p>", got, "should prepend the bullet block")
	})

	t.Run("no bullets", func(t *testing.T) {
		got := normalize.PrependBullets("<p>Açıklama</p>", nil)

		assert.Equal(t, "<p>Açıklama</p>", got, "should leave description unchanged")
	})

	t.Run("already present", func(t *testing.T) {
		described := block + "<p>Açıklama</p>"

		got := normalize.PrependBullets(described, bullets)

		assert.Equal(t, described, got, "should not duplicate the bullet block")
	})
}
