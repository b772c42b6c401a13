package main

import (
	"fmt"
	"os"

	"github.com/solederva/feedsync/internal/canonical"
	"github.com/spf13/cobra"
)

var (
	repairInput  string
	repairOutput string
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Fill missing or duplicate barcodes in a canonical feed",
	RunE:  runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&repairInput, "input", "", "canonical XML input file (required)")
	repairCmd.Flags().StringVar(&repairOutput, "output", "", "canonical XML output file (required)")
	_ = repairCmd.MarkFlagRequired("input")
	_ = repairCmd.MarkFlagRequired("output")
}

func runRepair(_ *cobra.Command, _ []string) error {
	input, err := os.Open(repairInput)
	if err != nil {
		return fmt.Errorf("can't open input file: %w", err)
	}
	defer input.Close()

	doc, err := canonical.ReadDocument(input)
	if err != nil {
		return fmt.Errorf("can't read canonical feed: %w", err)
	}

	canonical.RepairBarcodes(doc)

	output, err := os.Create(repairOutput)
	if err != nil {
		return fmt.Errorf("can't create output file: %w", err)
	}
	defer output.Close()

	if err := canonical.WriteDocument(output, doc); err != nil {
		return fmt.Errorf("can't write canonical feed: %w", err)
	}

	logger.Info().
		Int("products", len(doc.Products)).
		Str("output", repairOutput).
		Msg("barcode repair finished")

	return nil
}
