package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gotrs-io/lpa-frontend/internal/mockserver"
)

var (
	pactIn  string
	pactOut string
)

var convertPactCmd = &cobra.Command{
	Use:   "convert-pact",
	Short: "Convert a pact file into stub server mappings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertPact(pactIn, pactOut)
	},
}

func init() {
	convertPactCmd.Flags().StringVar(&pactIn, "in", "", "Pact JSON file to read")
	convertPactCmd.Flags().StringVar(&pactOut, "out", "", "Mappings file to write (stdout when empty)")
	_ = convertPactCmd.MarkFlagRequired("in")
}

func convertPact(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	mappings, err := mockserver.ConvertPact(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	if out == "" {
		return mockserver.WriteMappings(os.Stdout, mappings)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := mockserver.WriteMappings(f, mappings); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
