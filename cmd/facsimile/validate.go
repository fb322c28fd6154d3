package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/Facsimiler/facsimile/examples/mm1"
	"github.com/Facsimiler/facsimile/simulation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a run configuration and the demo model setup without " +
		"dispatching any event.",
	Run: func(cmd *cobra.Command, _ []string) {
		config := configFromFlags(cmd, false)

		runner, err := simulation.MakeBuilder().
			WithConfig(config).
			WithModel(mm1.NewModel(0.9, 1.0)).
			WithoutMonitoring().
			WithoutDataRecording().
			Build()
		if err != nil {
			fmt.Println(err)
			atexit.Exit(2)
		}

		_, err = runner.Run()
		if err != nil {
			fmt.Println(err)
			atexit.Exit(1)
		}

		fmt.Println("configuration valid")
	},
}

func init() {
	configFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}
