package entitlement_test

import (
	"scanguard/internal/entitlement"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func types(steps []entitlement.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Type
	}

	return out
}

func TestPlan_Free(t *testing.T) {
	steps, err := entitlement.Plan(domain.TierFree, domain.RunModeAuthenticated)
	require.NoError(t, err)

	got := types(steps)
	require.Equal(t, domain.TaskTypeFingerprint, got[0])
	require.Equal(t, domain.TaskTypeReportCompile, got[len(got)-1])
	require.Contains(t, got, domain.TaskTypeCookieCheck)
	require.NotContains(t, got, domain.TaskTypePerfBaseline)
	require.NotContains(t, got, domain.TaskTypeSoakTest)
	require.Len(t, got, 10)
}

func TestPlan_URLOnlyDropsSessionChecks(t *testing.T) {
	steps, err := entitlement.Plan(domain.TierFree, domain.RunModeURLOnly)
	require.NoError(t, err)

	got := types(steps)
	require.NotContains(t, got, domain.TaskTypeCookieCheck)
	require.NotContains(t, got, domain.TaskTypeInjectionSafe)
	require.Len(t, got, 8)
}

func TestPlan_Tiers(t *testing.T) {
	pro, err := entitlement.Plan(domain.TierPro, domain.RunModeHybrid)
	require.NoError(t, err)
	require.Contains(t, types(pro), domain.TaskTypePerfBaseline)
	require.Contains(t, types(pro), domain.TaskTypeLoadRampLight)
	require.NotContains(t, types(pro), domain.TaskTypeLoadRampFull)

	ent, err := entitlement.Plan(domain.TierEnterprise, domain.RunModeHybrid)
	require.NoError(t, err)
	require.Len(t, ent, 15)
	require.Equal(t, domain.TaskTypeStressTest, ent[13].Type)
}

func TestPlan_SkippableAndBudgets(t *testing.T) {
	steps, err := entitlement.Plan(domain.TierEnterprise, domain.RunModeHybrid)
	require.NoError(t, err)

	for _, s := range steps {
		switch s.Type {
		case domain.TaskTypeFingerprint:
			require.False(t, s.Skippable)
			require.Equal(t, 2, s.MaxRetries)
		case domain.TaskTypeReportCompile:
			require.False(t, s.Skippable)
			require.Equal(t, 1, s.MaxRetries)
		default:
			require.True(t, s.Skippable, s.Type)
			if domain.IsSecurityStage(domain.ClassifyStage(s.Type)) {
				require.Equal(t, 2, s.MaxRetries, s.Type)
			} else {
				require.Equal(t, 1, s.MaxRetries, s.Type)
			}
		}
	}
}

func TestPlan_Invalid(t *testing.T) {
	_, err := entitlement.Plan("platinum", domain.RunModeHybrid)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = entitlement.Plan(domain.TierFree, "full")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAllowed(t *testing.T) {
	require.True(t, entitlement.Allowed(domain.TierFree, domain.TaskTypeTLSCheck))
	require.False(t, entitlement.Allowed(domain.TierFree, domain.TaskTypeSoakTest))
	require.True(t, entitlement.Allowed(domain.TierEnterprise, domain.TaskTypeSoakTest))
	require.False(t, entitlement.Allowed(domain.TierEnterprise, "custom_probe"))
	require.False(t, entitlement.Allowed("platinum", domain.TaskTypeTLSCheck))
}
