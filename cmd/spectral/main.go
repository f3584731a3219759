// Command spectral runs stochastic block model spectrum experiments from the
// terminal: sample a planted partition, print its singular-value head, and
// report the profile-likelihood elbow selection.
package main

import "github.com/katalvlaran/spectral/cmd/spectral/commands"

func main() {
	commands.Execute()
}
