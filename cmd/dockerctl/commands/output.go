package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	units "github.com/docker/go-units"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/docker-client/internal/constants"
)

// NotAvailable is shown in tables for fields the daemon did not report.
const NotAvailable = "N/A"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// render writes value in the configured output format. table is only called
// for table output.
func render(w io.Writer, value interface{}, table func(*tablewriter.Table)) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		return encoder.Encode(value)
	default:
		t := tablewriter.NewWriter(w)
		table(t)

		if err := t.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func shortID(id *string) string {
	if id == nil {
		return NotAvailable
	}

	value := strings.TrimPrefix(*id, "sha256:")
	if len(value) > constants.ShortIDLength {
		return value[:constants.ShortIDLength]
	}

	return value
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}

	return *value
}

func humanSize(size *int64) string {
	if size == nil {
		return NotAvailable
	}

	return units.HumanSize(float64(*size))
}

// humanSince renders a unix timestamp as "3 days ago".
func humanSince(unix *int64) string {
	if unix == nil {
		return NotAvailable
	}

	return units.HumanDuration(time.Since(time.Unix(*unix, 0))) + " ago"
}

// humanSinceRFC3339 renders an RFC 3339 timestamp as "3 days ago".
func humanSinceRFC3339(timestamp *string) string {
	if timestamp == nil {
		return NotAvailable
	}

	parsed, err := time.Parse(time.RFC3339Nano, *timestamp)
	if err != nil {
		return *timestamp
	}

	return units.HumanDuration(time.Since(parsed)) + " ago"
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for key, value := range labels {
		pairs = append(pairs, key+"="+value)
	}

	slices.Sort(pairs)

	return strings.Join(pairs, ",")
}
