package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

type description struct {
	Base        int    `json:"base"`
	Unique      bool   `json:"unique"`
	RequireZero bool   `json:"require_zero"`
	Alphabet    string `json:"alphabet"`
	MinLength   int    `json:"min_length"`
	Pattern     string `json:"pattern"`
}

// RunDescribe prints the alphabet, minimum length and pattern derived from cfg.
func RunDescribe(log *slog.Logger, w io.Writer, cfg pandigital.Config, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	v, err := pandigital.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	d := description{
		Base:        cfg.Base,
		Unique:      cfg.Unique,
		RequireZero: cfg.RequireZero,
		Alphabet:    v.Alphabet(),
		MinLength:   v.MinLength(),
		Pattern:     v.Pattern(),
	}

	log.Debug("describing configuration", configAttrs(cfg))

	if format == "json" {
		jsonBytes, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	}

	_, _ = fmt.Fprintf(w, "Base:         %d\n", d.Base)
	_, _ = fmt.Fprintf(w, "Unique:       %t\n", d.Unique)
	_, _ = fmt.Fprintf(w, "Require zero: %t\n", d.RequireZero)
	_, _ = fmt.Fprintf(w, "Alphabet:     %s\n", d.Alphabet)
	_, _ = fmt.Fprintf(w, "Min length:   %d\n", d.MinLength)
	_, _ = fmt.Fprintf(w, "Pattern:      %s\n", d.Pattern)
	return nil
}
