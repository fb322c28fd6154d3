package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/Facsimiler/facsimile/analysis"
	"github.com/Facsimiler/facsimile/datarecording"
	"github.com/Facsimiler/facsimile/examples/mm1"
	"github.com/Facsimiler/facsimile/simulation"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the bundled M/M/1 queue model and record its metrics.",
	Run: func(cmd *cobra.Command, _ []string) {
		config := configFromFlags(cmd, true)

		arrivalRate, _ := cmd.Flags().GetFloat64("arrival-rate")
		serviceRate, _ := cmd.Flags().GetFloat64("service-rate")
		output, _ := cmd.Flags().GetString("output")
		monitor, _ := cmd.Flags().GetBool("monitor")
		monitorPort, _ := cmd.Flags().GetInt("monitor-port")

		model := mm1.NewModel(arrivalRate, serviceRate)

		builder := simulation.MakeBuilder().
			WithConfig(config).
			WithModel(model).
			WithOutputFileName(output)
		if monitor {
			if monitorPort > 0 {
				builder = builder.WithMonitorPort(monitorPort)
			}
		} else {
			builder = builder.WithoutMonitoring()
		}

		runner, err := builder.Build()
		if err != nil {
			fmt.Println(err)
			atexit.Exit(2)
		}

		recorder := datarecording.NewRecorder(output + "_metrics")
		collector := analysis.NewCollector(
			simulation.NewRecordingReporter(recorder))
		model.RegisterStatistics(runner.Engine(), collector)
		runner.AddObserver(collector)

		result, err := runner.Run()
		if err != nil {
			fmt.Println(err)
			atexit.Exit(1)
		}

		fmt.Printf("run ended at %.2f, %d events, %d snaps\n",
			result.EndTime, result.EventsDispatched, result.SnapsRecorded)
		if result.Quiescent {
			fmt.Println("model went quiescent before the full duration")
		}

		recorder.Close()
	},
}

func init() {
	configFlags(demoCmd)
	demoCmd.Flags().Float64("arrival-rate", 0.9,
		"customer arrivals per second")
	demoCmd.Flags().Float64("service-rate", 1.0,
		"customers served per second")
	demoCmd.Flags().String("output", "facsimile_demo",
		"base name of the result databases")
	demoCmd.Flags().Bool("monitor", false,
		"serve the monitoring API while the run executes")
	demoCmd.Flags().Int("monitor-port", 0,
		"port for the monitoring server, random if 0")
	rootCmd.AddCommand(demoCmd)
}
