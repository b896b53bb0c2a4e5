package builtins

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/quash-sh/quash/core/jobs"
	"github.com/quash-sh/quash/core/session"
)

type fakeJobs []jobs.Job

func (f fakeJobs) Active() []jobs.Job { return f }

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	Args []string
	Dir  string
	Jobs JobLister
}

func (gts goldenTestSuite) Run(t *testing.T, fn Func) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, tc := range gts {
		t.Run(tn, func(t *testing.T) {
			var out bytes.Buffer
			p := &Proc{
				Argv: tc.Args,
				IO:   session.NewStdio(nil, &out, &out),
				Dir:  tc.Dir,
				Jobs: tc.Jobs,
			}
			fn(p)

			g.Assert(t, tn, out.Bytes())
		})
	}
}
