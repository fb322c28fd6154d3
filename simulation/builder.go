package simulation

import (
	"log"
	"os"

	"github.com/rs/xid"

	"github.com/Facsimiler/facsimile/datarecording"
	"github.com/Facsimiler/facsimile/monitoring"
	"github.com/Facsimiler/facsimile/sim"
)

// Builder can be used to build a simulation run.
type Builder struct {
	config         Config
	model          Model
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	logger         *log.Logger
	logLevel       Severity
	logQueueDepth  int
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:     true,
		recordingOn:   true,
		logLevel:      SeverityInfo,
		logQueueDepth: 1024,
	}
}

// WithConfig sets the run configuration.
func (b Builder) WithConfig(config Config) Builder {
	b.config = config
	return b
}

// WithModel sets the model to simulate.
func (b Builder) WithModel(model Model) Builder {
	b.model = model
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutDataRecording sets the simulation to not persist results.
func (b Builder) WithoutDataRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithLogger sets the logger behind the run's log sink.
func (b Builder) WithLogger(logger *log.Logger, minSeverity Severity) Builder {
	b.logger = logger
	b.logLevel = minSeverity
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.model == nil {
		panic("a model is required to build a simulation")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the run. An invalid configuration is refused here, before
// anything starts.
func (b Builder) Build() (*Runner, error) {
	b.parametersMustBeValid()

	err := b.config.Validate()
	if err != nil {
		return nil, err
	}

	runID := xid.New().String()

	logger := b.logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	logSink := NewQueuedLogSink(logger, b.logLevel, b.logQueueDepth)

	engine := sim.NewSerialEngine()
	runner := NewRunner(runID, b.config, engine, b.model, logSink)

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "facsimile_run_" + runID
		}

		recorder := datarecording.NewRecorder(outputPath)
		runner.AddObserver(
			newSnapRecorder(runID, b.config.MasterSeed, recorder))
	}

	if b.monitorOn {
		monitor := monitoring.NewMonitor()
		if b.monitorPort > 0 {
			monitor.WithPortNumber(b.monitorPort)
		}
		monitor.RegisterController(runner)
		monitor.RegisterModel(runner.ModelState())
		monitor.StartServer()
	}

	return runner, nil
}
