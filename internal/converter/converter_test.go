package converter_test

import (
	"testing"

	"github.com/solederva/feedsync/internal/barcode"
	"github.com/solederva/feedsync/internal/converter"
	"github.com/solederva/feedsync/internal/normalize"
	"github.com/solederva/feedsync/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitConvert(t *testing.T) {
	conv := converter.New(converter.Options{VariantMode: true})

	src := models.SourceProduct{
		Code:         "MN123",
		Name:         "Deri Bot",
		Price:        "459.90",
		Currency:     "TRY",
		TaxRate:      "10",
		MainCategory: "Ayakkabı",
		Category:     "Bot",
		Description:  "<p>Klasik bot.</p>",
		Weight:       "0,8",
		Images:       []string{"https://cdn.example.com/1.jpg"},
		Variants: []models.SourceVariant{
			{Color: "SYH", Size: "40", Quantity: "5"},
			{Color: "BYZ", Size: "41", Quantity: "3"},
		},
	}

	got, err := conv.Convert(src)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "SD123", got.Code, "should rewrite the code prefix")
	assert.Equal(t, "8", got.Quantity, "should roll variant quantities up")
	assert.Equal(t, "TL", got.Currency, "should canonicalize the currency")
	assert.Equal(t, "solederva", got.Brand, "should fall back to the default brand")
	assert.Equal(t, "0.8", got.Weight, "should normalize the weight")
	assert.Equal(t, "Ayakkabı > Bot", got.Category, "should join non-empty category levels")
	assert.Empty(t, got.Barcode, "keep strategy without source barcodes should stay empty")

	require.Len(t, got.Variants, 2, "should emit both variants")
	assert.Equal(t, "SD123-SIYAH-40", got.Variants[0].Code, "should derive the first variant code")
	assert.Equal(t, "SD123-BEYAZ-41", got.Variants[1].Code, "should derive the second variant code")
	assert.Equal(t, "5", got.Variants[0].Quantity, "should keep the first variant quantity")
	assert.Equal(t, "459.90", got.Variants[0].Price, "empty variant price should fall back to product price")
	assert.Equal(t, "Renk", got.Variants[0].ColorLabel, "should label the color")
	assert.Equal(t, "SIYAH", got.Variants[0].ColorValue, "should expand the color abbreviation")
	assert.Equal(t, "Beden", got.Variants[0].SizeLabel, "should label the size")
	assert.Equal(t, "40", got.Variants[0].SizeValue, "should keep the size")
}

func TestUnitConvertMissingCode(t *testing.T) {
	conv := converter.New(converter.Options{})

	_, err := conv.Convert(models.SourceProduct{Name: "Deri Bot"})

	require.ErrorIs(t, err, converter.ErrMissingCode, "should reject products without a code")
}

func TestUnitConvertBrand(t *testing.T) {
	tests := map[string]struct {
		override string
		source   string
		want     string
	}{
		"override wins":  {override: "acme", source: "vendor", want: "acme"},
		"source kept":    {source: "vendor", want: "vendor"},
		"default":        {want: "solederva"},
		"padded source":  {source: " vendor ", want: "vendor"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conv := converter.New(converter.Options{BrandOverride: tt.override})

			got, err := conv.Convert(models.SourceProduct{Code: "MN1", Brand: tt.source})

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.want, got.Brand, "should resolve the brand")
		})
	}
}

func TestUnitConvertQuantity(t *testing.T) {
	t.Run("no variants uses stock", func(t *testing.T) {
		conv := converter.New(converter.Options{})

		got, err := conv.Convert(models.SourceProduct{Code: "MN1", Stock: "7"})

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, "7", got.Quantity, "should keep the stock value")
	})

	t.Run("no stock defaults to zero", func(t *testing.T) {
		conv := converter.New(converter.Options{})

		got, err := conv.Convert(models.SourceProduct{Code: "MN1"})

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, "0", got.Quantity, "should default to zero")
	})

	t.Run("variant mode off ignores variants", func(t *testing.T) {
		conv := converter.New(converter.Options{})

		got, err := conv.Convert(models.SourceProduct{
			Code:     "MN1",
			Stock:    "7",
			Variants: []models.SourceVariant{{Color: "SYH", Quantity: "5"}},
		})

		require.NoError(t, err, "shouldn't return any error")
		assert.Empty(t, got.Variants, "should not emit variants")
		assert.Equal(t, "7", got.Quantity, "should keep the stock value")
	})
}

func TestUnitConvertBarcodeStrategies(t *testing.T) {
	src := models.SourceProduct{
		Code:    "MN1",
		Name:    "Bot",
		Barcode: "8680001111111",
		Variants: []models.SourceVariant{
			{Color: "SYH", Size: "40", Barcode: "8680002222222"},
		},
	}

	t.Run("keep", func(t *testing.T) {
		conv := converter.New(converter.Options{VariantMode: true})

		got, err := conv.Convert(src)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, "8680001111111", got.Barcode, "should keep the source barcode")
		assert.Equal(t, "8680002222222", got.Variants[0].Barcode, "should keep the variant barcode")
	})

	t.Run("keep with suffix", func(t *testing.T) {
		conv := converter.New(converter.Options{VariantMode: true, Suffix: "21"})

		got, err := conv.Convert(src)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, "868000111111121", got.Barcode, "should append the suffix")
		assert.Equal(t, "868000222222221", got.Variants[0].Barcode, "should append the suffix to variants")
	})

	t.Run("keep falls back to first variant barcode", func(t *testing.T) {
		conv := converter.New(converter.Options{VariantMode: true})

		bare := src
		bare.Barcode = ""

		got, err := conv.Convert(bare)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, "8680002222222", got.Barcode, "should borrow the first variant barcode")
	})

	t.Run("blank", func(t *testing.T) {
		conv := converter.New(converter.Options{VariantMode: true, Strategy: barcode.StrategyBlank})

		got, err := conv.Convert(src)

		require.NoError(t, err, "shouldn't return any error")
		assert.Empty(t, got.Barcode, "should blank the product barcode")
		assert.Empty(t, got.Variants[0].Barcode, "should blank the variant barcode")
	})

	t.Run("synthetic", func(t *testing.T) {
		conv := converter.New(converter.Options{VariantMode: true, Strategy: barcode.StrategySynthetic})

		got, err := conv.Convert(src)
		again, errAgain := conv.Convert(src)

		require.NoError(t, err, "shouldn't return any error")
		require.NoError(t, errAgain, "shouldn't return any error")
		assert.Len(t, got.Barcode, barcode.DefaultLength, "should generate a full-length product barcode")
		assert.Equal(t, barcode.DefaultProductPrefix, got.Barcode[:4], "should use the product prefix")
		assert.Equal(t, barcode.DefaultVariantPrefix, got.Variants[0].Barcode[:4], "should use the variant prefix")
		assert.Equal(t, got.Barcode, again.Barcode, "same product should always get the same barcode")
		assert.Equal(t, got, again, "converting the same product twice should produce identical results")
		assert.NotEqual(t, got.Barcode, got.Variants[0].Barcode, "product and variant barcodes should differ")
	})
}

func TestUnitConvertTextPipeline(t *testing.T) {
	conv := converter.New(converter.Options{
		TitleTemplate: "{brand} {model} {color} {rest}",
		BannedTerms:   []normalize.Replacement{{Term: "ithal", With: ""}},
		Bullets:       true,
	})

	got, err := conv.Convert(models.SourceProduct{
		Code:        "MN123",
		Name:        "MN123 ithal Deri Bot SIYAH",
		Brand:       "vendor",
		Description: "<p>Vegan deri, ortopedik taban.</p>",
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, "vendor MN123 SIYAH Deri Bot", got.Name,
		"should cleanse banned terms before templating")
	assert.Equal(t,
		"<ul><li>Vegan deri malzeme</li><li>Ortopedik iç taban</li></ul><p>Vegan deri, ortopedik taban.</p>",
		got.Description,
		"should prepend feature bullets to the cleansed description")
}

func TestUnitConvertImages(t *testing.T) {
	conv := converter.New(converter.Options{})

	got, err := conv.Convert(models.SourceProduct{
		Code: "MN1",
		Images: []string{
			`"https://cdn.example.com/1.jpg"`,
			"",
			"https://cdn.example.com/2 b.jpg",
			"https://cdn.example.com/3.jpg",
			"https://cdn.example.com/4.jpg",
			"https://cdn.example.com/5.jpg",
			"https://cdn.example.com/6.jpg",
		},
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, []string{
		"https://cdn.example.com/1.jpg",
		"https://cdn.example.com/2%20b.jpg",
		"https://cdn.example.com/3.jpg",
		"https://cdn.example.com/4.jpg",
		"https://cdn.example.com/5.jpg",
	}, got.Images, "should clean, drop empty and cap images at five")
}

func TestUnitCategoryPath(t *testing.T) {
	tests := map[string]struct {
		levels []string
		want   string
	}{
		"all levels":   {levels: []string{"Ayakkabı", "Bot", "Deri"}, want: "Ayakkabı > Bot > Deri"},
		"empty middle": {levels: []string{"Shoes", "", "Sneakers"}, want: "Shoes > Sneakers"},
		"single":       {levels: []string{"Shoes"}, want: "Shoes"},
		"padded":       {levels: []string{" Shoes ", "Boots"}, want: "Shoes > Boots"},
		"all empty":    {levels: []string{"", "", ""}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, converter.CategoryPath(tt.levels...), "should join category levels")
		})
	}
}
