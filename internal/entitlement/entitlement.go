// Package entitlement decides which task types a scan run may contain, based on
// the subscription tier of the project owner and the run mode.
package entitlement

import (
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

// Step is one entry of a run plan, turned into a pending task when the run is created.
type Step struct {
	// Type is the task type tag.
	Type string
	// Skippable tasks are skipped instead of failing the run once their retries are exhausted.
	Skippable bool
	// MaxRetries is the retry budget of the task.
	MaxRetries int
}

type catalogEntry struct {
	step    Step
	minTier domain.Tier
	// needsSession marks checks that only make sense against an authenticated session.
	needsSession bool
}

// catalog lists every known task type in execution order.
var catalog = []catalogEntry{ //nolint: gochecknoglobals
	{step: Step{Type: domain.TaskTypeFingerprint, MaxRetries: 2}, minTier: domain.TierFree},
	{step: Step{Type: domain.TaskTypeTLSCheck, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{step: Step{Type: domain.TaskTypeSecurityHeaders, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{step: Step{Type: domain.TaskTypeCORSCheck, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{
		step:    Step{Type: domain.TaskTypeCookieCheck, Skippable: true, MaxRetries: 2},
		minTier: domain.TierFree, needsSession: true,
	},
	{step: Step{Type: domain.TaskTypeExposureCheck, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{step: Step{Type: domain.TaskTypeEndpointDiscovery, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{
		step:    Step{Type: domain.TaskTypeInjectionSafe, Skippable: true, MaxRetries: 2},
		minTier: domain.TierFree, needsSession: true,
	},
	{step: Step{Type: domain.TaskTypeGraphQLIntrospection, Skippable: true, MaxRetries: 2}, minTier: domain.TierFree},
	{step: Step{Type: domain.TaskTypePerfBaseline, Skippable: true, MaxRetries: 1}, minTier: domain.TierPro},
	{step: Step{Type: domain.TaskTypeLoadRampLight, Skippable: true, MaxRetries: 1}, minTier: domain.TierPro},
	{step: Step{Type: domain.TaskTypeLoadRampFull, Skippable: true, MaxRetries: 1}, minTier: domain.TierEnterprise},
	{step: Step{Type: domain.TaskTypeSoakTest, Skippable: true, MaxRetries: 1}, minTier: domain.TierEnterprise},
	{step: Step{Type: domain.TaskTypeStressTest, Skippable: true, MaxRetries: 1}, minTier: domain.TierEnterprise},
	{step: Step{Type: domain.TaskTypeReportCompile, MaxRetries: 1}, minTier: domain.TierFree},
}

func rank(t domain.Tier) int {
	switch t {
	case domain.TierFree:
		return 0
	case domain.TierPro:
		return 1
	case domain.TierEnterprise:
		return 2
	default:
		return -1
	}
}

// Plan returns the ordered steps of a new run for the given tier and mode.
func Plan(tier domain.Tier, mode domain.RunMode) ([]Step, error) {
	if !tier.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown tier %q", tier)
	}
	if !mode.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown run mode %q", mode)
	}

	steps := make([]Step, 0, len(catalog))
	for _, e := range catalog {
		if rank(tier) < rank(e.minTier) {
			continue
		}
		if e.needsSession && mode == domain.RunModeURLOnly {
			continue
		}
		steps = append(steps, e.step)
	}

	return steps, nil
}

// Allowed reports whether the tier may run tasks of the given type at all.
func Allowed(tier domain.Tier, taskType string) bool {
	for _, e := range catalog {
		if e.step.Type == taskType {
			return rank(tier) >= rank(e.minTier) && rank(tier) >= 0
		}
	}

	return false
}
