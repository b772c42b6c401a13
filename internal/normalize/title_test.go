package normalize_test

import (
	"testing"

	"github.com/solederva/feedsync/internal/normalize"
	"github.com/stretchr/testify/assert"
)

func TestUnitTitleTemplate(t *testing.T) {
	tests := map[string]struct {
		name     string
		template string
		brand    string
		want     string
	}{
		"empty template returns name": {
			name:     "MN123 Deri Bot SIYAH",
			template: "",
			brand:    "solederva",
			want:     "MN123 Deri Bot SIYAH",
		},
		"all placeholders": {
			name:     "MN123 Deri Bot SIYAH",
			template: "{brand} {model} {color} {rest}",
			brand:    "solederva",
			want:     "solederva MN123 SIYAH Deri Bot",
		},
		"no color in name": {
			name:     "MN123 Deri Bot",
			template: "{model} - {rest} {color}",
			brand:    "solederva",
			want:     "MN123 - Deri Bot",
		},
		"color in the middle": {
			name:     "MN123 SIYAH Deri Bot",
			template: "{model} {rest} ({color})",
			brand:    "solederva",
			want:     "MN123 Deri Bot (SIYAH)",
		},
		"unknown placeholder stays literal": {
			name:     "MN123 Bot",
			template: "{model} {size}",
			brand:    "solederva",
			want:     "MN123 {size}",
		},
		"lowercase color detected": {
			name:     "MN123 Bot bordo",
			template: "{color}",
			brand:    "solederva",
			want:     "bordo",
		},
		"color word inside another word stays intact": {
			name:     "SIYAHLI Bot SIYAH",
			template: "{model} {rest} {color}",
			brand:    "solederva",
			want:     "SIYAHLI Bot SIYAH",
		},
		"model prefix of a longer later word": {
			name:     "SIYAH Bot SIYAHLI",
			template: "{rest}",
			brand:    "solederva",
			want:     "Bot SIYAHLI",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := normalize.TitleTemplate(tt.name, tt.template, tt.brand)

			assert.Equal(t, tt.want, got, "should build title from template")
		})
	}
}
