package simulation

import (
	"sort"

	"github.com/Facsimiler/facsimile/datarecording"
	"github.com/Facsimiler/facsimile/sim"
)

// snapRow is the database row recorded for each completed measurement
// window.
type snapRow struct {
	SnapIndex int
	Start     float64
	End       float64
}

// runRow is the database row summarizing the run.
type runRow struct {
	RunID                string
	MasterSeed           uint64
	EndTime              float64
	EventsDispatched     int64
	SnapsRecorded        int
	Quiescent            bool
	Cancelled            bool
	TerminationRequested bool
}

// A snapRecorder is an Observer that persists snap boundaries and the run
// summary through a DataRecorder.
type snapRecorder struct {
	runID      string
	masterSeed uint64
	recorder   datarecording.DataRecorder
}

func newSnapRecorder(
	runID string,
	masterSeed uint64,
	recorder datarecording.DataRecorder,
) *snapRecorder {
	recorder.CreateTable("snaps", snapRow{})
	recorder.CreateTable("runs", runRow{})

	return &snapRecorder{
		runID:      runID,
		masterSeed: masterSeed,
		recorder:   recorder,
	}
}

func (r *snapRecorder) RunStarted(_ sim.VTimeInSec, _ any) {}

func (r *snapRecorder) WarmUpEnded(_ sim.VTimeInSec, _ any) {}

func (r *snapRecorder) SnapTaken(snap Snap, _ any) {
	r.recorder.InsertData("snaps", snapRow{
		SnapIndex: snap.Index,
		Start:     float64(snap.Start),
		End:       float64(snap.End),
	})
}

func (r *snapRecorder) RunEnded(
	now sim.VTimeInSec,
	result *RunResult,
	_ any,
) {
	r.recorder.InsertData("runs", runRow{
		RunID:                r.runID,
		MasterSeed:           r.masterSeed,
		EndTime:              float64(now),
		EventsDispatched:     result.EventsDispatched,
		SnapsRecorded:        result.SnapsRecorded,
		Quiescent:            result.Quiescent,
		Cancelled:            result.Cancelled,
		TerminationRequested: result.TerminationRequested,
	})
	r.recorder.Flush()
}

// metricRow is the database row recorded for each metric of each window.
type metricRow struct {
	SnapIndex int
	Metric    string
	Value     float64
}

// A RecordingReporter is a Reporter that persists snap metrics through a
// DataRecorder. Metrics are written in name order so that equal runs
// produce equal databases.
type RecordingReporter struct {
	recorder datarecording.DataRecorder
}

// NewRecordingReporter creates a RecordingReporter over the given recorder.
func NewRecordingReporter(
	recorder datarecording.DataRecorder,
) *RecordingReporter {
	recorder.CreateTable("metrics", metricRow{})

	return &RecordingReporter{recorder: recorder}
}

// Record persists the metrics of one measurement window.
func (r *RecordingReporter) Record(
	snapIndex int,
	metrics map[string]float64,
) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r.recorder.InsertData("metrics", metricRow{
			SnapIndex: snapIndex,
			Metric:    name,
			Value:     metrics[name],
		})
	}
}
