package domain_test

import (
	"scanguard/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyStage(t *testing.T) {
	cases := map[string]string{
		"fingerprint":           "Fingerprint",
		"tls_check":             "Security Safe Checks",
		"security_headers":      "Security Safe Checks",
		"cors_check":            "Security Safe Checks",
		"cookie_check":          "Security Safe Checks",
		"exposure_check":        "Security Safe Checks",
		"endpoint_discovery":    "Security Safe Checks",
		"injection_safe":        "Security Safe Checks",
		"graphql_introspection": "Security Safe Checks",
		"perf_baseline":         "Performance Baseline",
		"load_ramp_light":       "Load Ramp",
		"load_ramp_full":        "Load Ramp",
		"soak_test":             "Soak Test",
		"stress_test":           "Stress & Recovery",
		"report_compile":        "Report Compile",
	}
	for in, want := range cases {
		require.Equal(t, want, domain.ClassifyStage(in), in)
	}
}

func TestClassifyStage_IsTotal(t *testing.T) {
	for _, in := range []string{"custom_sweep", "TLS_CHECK", "dns-sweep", "   ", "", "ünïcode"} {
		got := domain.ClassifyStage(in)
		require.NotEmpty(t, got, "input %q", in)
		require.Equal(t, got, domain.ClassifyStage(in), "classification must be stable for %q", in)
	}

	// unknown types pass through untouched, case included
	require.Equal(t, "custom_sweep", domain.ClassifyStage("custom_sweep"))
	require.Equal(t, "TLS_CHECK", domain.ClassifyStage("TLS_CHECK"))

	// only the empty type has no name of its own; whitespace is returned as given
	require.Equal(t, "Unknown", domain.ClassifyStage(""))
	require.Equal(t, "   ", domain.ClassifyStage("   "))
	require.Equal(t, "\t", domain.ClassifyStage("\t"))
}
