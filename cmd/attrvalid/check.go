package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/attrvalid/pkg/schema"
	"github.com/dmitrymomot/attrvalid/pkg/validation"
)

type checkFlags struct {
	schema  string
	values  string
	only    string
	subset  []string
	present bool
}

func checkCmd(a *app) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a JSON values document against a schema",
		Long: `Validate a JSON object of attribute values against a YAML schema.

Prints "valid" and exits 0 when every selected attribute passes. Otherwise
prints the violations as JSON and exits 1. Schema errors, unknown
attributes and unknown types exit 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.check(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Schema file (YAML)")
	cmd.Flags().StringVarP(&f.values, "values", "v", "-", `Values file (JSON), "-" for stdin`)
	cmd.Flags().StringVar(&f.only, "only", "", "Validate a single attribute")
	cmd.Flags().StringSliceVar(&f.subset, "subset", nil, "Validate the listed attributes")
	cmd.Flags().BoolVar(&f.present, "present", false, "Validate only attributes present in the values")
	_ = cmd.MarkFlagRequired("schema")
	cmd.MarkFlagsMutuallyExclusive("only", "subset", "present")

	return cmd
}

func (a *app) check(cmd *cobra.Command, f checkFlags) error {
	defs, err := schema.LoadFile(f.schema)
	if err != nil {
		return err
	}
	values, err := readValues(a.stdin, f.values)
	if err != nil {
		return err
	}

	v, err := validation.FromDefinitions(defs, a.validationOptions()...)
	if err != nil {
		return err
	}

	errs, err := v.Validate(cmd.Context(), values, f.selector(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintln(out, "valid")
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(errs.Report()); err != nil {
		return err
	}
	return errInvalid
}

func (f checkFlags) selector(cmd *cobra.Command) validation.Selector {
	switch {
	case f.only != "":
		return validation.Only(f.only)
	case cmd.Flags().Changed("subset"):
		return validation.Subset(f.subset...)
	case f.present:
		return validation.PresentOnly()
	}
	return validation.All()
}

// readValues decodes a JSON object, keeping numbers as json.Number so that
// integer and float values keep their literal form.
func readValues(stdin io.Reader, path string) (validation.Values, error) {
	var r io.Reader = stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
		defer file.Close()
		r = file
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var values validation.Values
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	if values == nil {
		return nil, errors.New("parse values: expected a JSON object")
	}
	return values, nil
}
