package domain

// Stage labels shown for progress and recorded by halts.
const (
	StageInitializing       = "Initializing"
	StageFingerprint        = "Fingerprint"
	StageSecuritySafeChecks = "Security Safe Checks"
	StagePerformanceBase    = "Performance Baseline"
	StageLoadRamp           = "Load Ramp"
	StageSoakTest           = "Soak Test"
	StageStressRecovery     = "Stress & Recovery"
	StageReportCompile      = "Report Compile"

	// stageUnknown is returned for an empty task type.
	stageUnknown = "Unknown"
)

var stages = map[string]string{ //nolint: gochecknoglobals
	TaskTypeFingerprint:          StageFingerprint,
	TaskTypeTLSCheck:             StageSecuritySafeChecks,
	TaskTypeSecurityHeaders:      StageSecuritySafeChecks,
	TaskTypeCORSCheck:            StageSecuritySafeChecks,
	TaskTypeCookieCheck:          StageSecuritySafeChecks,
	TaskTypeExposureCheck:        StageSecuritySafeChecks,
	TaskTypeEndpointDiscovery:    StageSecuritySafeChecks,
	TaskTypeInjectionSafe:        StageSecuritySafeChecks,
	TaskTypeGraphQLIntrospection: StageSecuritySafeChecks,
	TaskTypePerfBaseline:         StagePerformanceBase,
	TaskTypeLoadRampLight:        StageLoadRamp,
	TaskTypeLoadRampFull:         StageLoadRamp,
	TaskTypeSoakTest:             StageSoakTest,
	TaskTypeStressTest:           StageStressRecovery,
	TaskTypeReportCompile:        StageReportCompile,
}

// ClassifyStage maps a task type to its stage label. It never fails: unknown
// types are returned unchanged and an empty type yields "Unknown".
func ClassifyStage(taskType string) string {
	if stage, ok := stages[taskType]; ok {
		return stage
	}
	if taskType == "" {
		return stageUnknown
	}

	return taskType
}

// IsSecurityStage reports whether tasks of the stage contribute to the security score.
func IsSecurityStage(stage string) bool {
	return stage == StageFingerprint || stage == StageSecuritySafeChecks
}

// IsReliabilityStage reports whether tasks of the stage contribute to the reliability score.
func IsReliabilityStage(stage string) bool {
	switch stage {
	case StagePerformanceBase, StageLoadRamp, StageSoakTest, StageStressRecovery:
		return true
	default:
		return false
	}
}
