// Facsimile is the command-line companion of the facsimile simulation
// library. It validates run configurations and runs a bundled demo model.
package main

func main() {
	Execute()
}
