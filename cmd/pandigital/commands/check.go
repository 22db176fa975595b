package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/pandigital/pkg/logger"
	"github.com/dmitrymomot/pandigital/pkg/pandigital"
)

// CheckOptions carries the flags of the check command.
type CheckOptions struct {
	Config  pandigital.Config
	Workers int
	Verbose bool
	Format  string
}

type checkResult struct {
	Value      string `json:"value"`
	Pandigital bool   `json:"pandigital"`
	Reason     string `json:"reason,omitempty"`
	Missing    string `json:"missing,omitempty"`
}

// RunCheck validates values, or the non-empty lines of streams.Reader when values
// is empty, and writes one result per value in input order. It returns
// ErrNotPandigital when any value fails.
func RunCheck(
	ctx context.Context,
	log *slog.Logger,
	streams IOTuple,
	values []string,
	opts CheckOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	v, err := pandigital.NewFromConfig(opts.Config)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if len(values) == 0 {
		values, err = readValues(streams.Reader)
		if err != nil {
			return fmt.Errorf("failed to read values: %w", err)
		}
	}

	start := time.Now()
	passed, err := pandigital.CheckAll(ctx, v, values, opts.Workers)
	if err != nil {
		return fmt.Errorf("failed to check values: %w", err)
	}

	results := make([]checkResult, len(values))
	failed := 0
	for i, value := range values {
		results[i] = checkResult{Value: value, Pandigital: passed[i]}
		if passed[i] {
			continue
		}
		failed++
		if opts.Verbose || opts.Format == "json" {
			results[i].Reason = reasonText(v.Check(value))
			results[i].Missing = v.Missing(value)
		}
		log.DebugContext(ctx, "value rejected", logger.Value(value), slog.String("reason", results[i].Reason))
	}

	if opts.Format == "json" {
		if err := outputCheckJSON(streams.Writer, results); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputCheckText(streams.Writer, results, opts.Verbose)
	}

	log.InfoContext(ctx, "check completed",
		configAttrs(opts.Config),
		logger.Count(len(values)),
		slog.Int("failed", failed),
		logger.Duration(time.Since(start)),
	)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrNotPandigital, failed, len(values))
	}
	return nil
}

// readValues returns the non-empty lines of r with trailing CR removed.
func readValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		values = append(values, line)
	}
	return values, scanner.Err()
}

func reasonText(err error) string {
	if err == nil {
		return ""
	}
	return strings.TrimPrefix(err.Error(), "pandigital: ")
}

func outputCheckText(w io.Writer, results []checkResult, verbose bool) {
	for _, r := range results {
		if !verbose || r.Pandigital {
			_, _ = fmt.Fprintf(w, "%s\t%t\n", r.Value, r.Pandigital)
			continue
		}
		if r.Missing != "" {
			_, _ = fmt.Fprintf(w, "%s\t%t\t%s (missing %s)\n", r.Value, r.Pandigital, r.Reason, r.Missing)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%t\t%s\n", r.Value, r.Pandigital, r.Reason)
	}
}

func outputCheckJSON(w io.Writer, results []checkResult) error {
	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
