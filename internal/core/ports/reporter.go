package ports

import "go.trai.ch/dispatch/internal/core/domain"

// Reporter presents build results to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// ReportSubmitted acknowledges builds that were scheduled without waiting for them.
	ReportSubmitted(builds []domain.ScheduledBuild, logsURL func(domain.BuildID) string)

	// ReportOutcomes prints one line per terminal build outcome.
	ReportOutcomes(outcomes []domain.BuildOutcome)
}
