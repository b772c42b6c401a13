package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/solederva/feedsync/internal/barcode"
	"github.com/solederva/feedsync/internal/canonical"
	"github.com/solederva/feedsync/internal/converter"
	"github.com/solederva/feedsync/internal/decoder"
	"github.com/solederva/feedsync/internal/normalize"
	"github.com/spf13/cobra"
)

var (
	convertInput         string
	convertOutput        string
	convertVariants      bool
	convertStrategy      string
	convertSuffix        string
	convertCodeFrom      string
	convertCodeTo        string
	convertBrand         string
	convertTitleTemplate string
	convertBullets       bool
	convertReplacements  []string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a vendor feed into the canonical marketplace schema",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertInput, "input", "", "vendor feed XML file (required)")
	convertCmd.Flags().StringVar(&convertOutput, "output", "", "canonical XML output file (required)")
	convertCmd.Flags().BoolVar(&convertVariants, "variants", false, "emit product variants")
	convertCmd.Flags().StringVar(&convertStrategy, "barcode-strategy", string(barcode.StrategyKeep),
		"barcode strategy: keep, blank or synthetic")
	convertCmd.Flags().StringVar(&convertSuffix, "barcode-suffix", "", "literal suffix appended to kept barcodes")
	convertCmd.Flags().StringVar(&convertCodeFrom, "code-prefix-from", converter.DefaultCodePrefixFrom,
		"product code prefix to rewrite")
	convertCmd.Flags().StringVar(&convertCodeTo, "code-prefix-to", converter.DefaultCodePrefixTo,
		"product code prefix replacement")
	convertCmd.Flags().StringVar(&convertBrand, "brand", "", "brand override for all products")
	convertCmd.Flags().StringVar(&convertTitleTemplate, "title-template", "",
		"product title template with {brand}, {model}, {color} and {rest} placeholders")
	convertCmd.Flags().BoolVar(&convertBullets, "bullets", false, "prepend feature bullets to descriptions")
	convertCmd.Flags().StringArrayVar(&convertReplacements, "replace", nil,
		"term replacement as term=with, repeatable; empty with removes the term")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, _ []string) error {
	strategy, err := barcode.ParseStrategy(convertStrategy)
	if err != nil {
		return err
	}

	replacements, err := parseReplacements(convertReplacements)
	if err != nil {
		return err
	}

	conv := converter.New(converter.Options{
		VariantMode:    convertVariants,
		Strategy:       strategy,
		Suffix:         barcode.SuffixPolicy(convertSuffix),
		CodePrefixFrom: convertCodeFrom,
		CodePrefixTo:   convertCodeTo,
		BrandOverride:  convertBrand,
		TitleTemplate:  convertTitleTemplate,
		BannedTerms:    replacements,
		Bullets:        convertBullets,
	})

	input, err := os.Open(convertInput)
	if err != nil {
		return fmt.Errorf("can't open input file: %w", err)
	}
	defer input.Close()

	pipeline := converter.NewPipeline(&decoder.Decoder{}, conv, &logger)

	products, skipped, err := pipeline.Run(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("can't convert feed: %w", err)
	}

	output, err := os.Create(convertOutput)
	if err != nil {
		return fmt.Errorf("can't create output file: %w", err)
	}
	defer output.Close()

	if err := canonical.Write(output, products); err != nil {
		return fmt.Errorf("can't write canonical feed: %w", err)
	}

	logger.Info().
		Int("products", len(products)).
		Int("skipped", skipped).
		Str("output", convertOutput).
		Msg("conversion finished")

	return nil
}

func parseReplacements(raw []string) ([]normalize.Replacement, error) {
	replacements := make([]normalize.Replacement, 0, len(raw))
	for _, rule := range raw {
		term, with, found := strings.Cut(rule, "=")
		if !found || term == "" {
			return nil, fmt.Errorf("invalid replacement rule %q, expected term=with", rule)
		}

		replacements = append(replacements, normalize.Replacement{Term: term, With: with})
	}

	return replacements, nil
}
