// Package report prints build acknowledgements and outcomes.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/dispatch/internal/core/domain"
	"go.trai.ch/dispatch/internal/core/ports"
	"go.trai.ch/dispatch/internal/ui/output"
	"go.trai.ch/dispatch/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter on a terminal.
// Lines are prefixed with the platform only when more than one build is reported.
type Reporter struct {
	out *termenv.Output
}

// New creates a Reporter writing to w. A nil writer means stdout.
func New(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: output.New(w)}
}

// ReportSubmitted prints the logs URL of every scheduled build.
func (r *Reporter) ReportSubmitted(builds []domain.ScheduledBuild, logsURL func(domain.BuildID) string) {
	for _, b := range builds {
		r.line(len(builds) > 1, b.Platform, "Logs url: "+r.link(logsURL(b.ID)))
	}
}

// ReportOutcomes prints the artifact URL of every successful build and the error of
// every failed one.
func (r *Reporter) ReportOutcomes(outcomes []domain.BuildOutcome) {
	multi := len(outcomes) > 1
	for _, o := range outcomes {
		if o.Succeeded {
			r.line(multi, o.Platform, "Artifact url: "+r.link(o.ArtifactURL))
			continue
		}

		msg := "build failed"
		if o.Err != nil {
			msg = o.Err.Error()
		}
		r.line(multi, o.Platform, r.out.String(style.Cross+" "+msg).Foreground(r.out.Color(string(style.Red))).String())
	}
}

func (r *Reporter) link(url string) string {
	return r.out.String(url).Foreground(r.out.Color(string(style.Iris))).String()
}

func (r *Reporter) line(withPlatform bool, p domain.Platform, msg string) {
	if withPlatform {
		msg = fmt.Sprintf("Platform: %s, %s", p, msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}
