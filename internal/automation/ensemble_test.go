package automation

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/dialnav/internal/config"
	"github.com/san-kum/dialnav/internal/logger"
)

func TestRunAllMatchesSequential(t *testing.T) {
	var jobs []Job
	for seed := int64(1); seed <= 4; seed++ {
		jobs = append(jobs, Job{Config: config.DefaultConfig(), Scenario: RandomScenario(seed, 3, 3)})
	}

	traces, err := RunAll(context.Background(), jobs, 2, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if len(traces) != len(jobs) {
		t.Fatalf("expected %d traces, got %d", len(jobs), len(traces))
	}

	for i, job := range jobs {
		want, err := Run(context.Background(), config.DefaultConfig(), job.Scenario, logger.Discard())
		if err != nil {
			t.Fatal(err)
		}
		got := traces[i]
		if got.Name != job.Scenario.Name {
			t.Errorf("trace %d: expected %s, got %s", i, job.Scenario.Name, got.Name)
		}
		if len(got.Samples) != len(want.Samples) || len(got.Events) != len(want.Events) {
			t.Errorf("trace %d differs from sequential run", i)
			continue
		}
		wf, _ := want.Final()
		gf, _ := got.Final()
		if wf != gf {
			t.Errorf("trace %d: final %+v, sequential %+v", i, gf, wf)
		}
	}
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Config: config.DefaultConfig(), Scenario: &Scenario{Name: "idle", Duration: 5}}}
	_, err := RunAll(ctx, jobs, 0, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
