// vi: sw=4 ts=4:

/*

	Mnemonic:	sfcs-sim
	Abstract:	Single entry point that runs the bundled Smart Factory
				Control System scenarios. No configuration file format;
				the inputs are the chosen subcommand, -v for bleat
				verbosity, and the batch subcommand's topology flags, in
				keeping with the library-shaped, no-wire-protocol design
				of the core packages.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package main

import (
	"fmt"
	"os"

	"github.com/att/gopkgs/bleater"
	"github.com/spf13/cobra"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
	"github.com/sunfl0w/SFCS-Sim/internal/scenario"
	"github.com/sunfl0w/SFCS-Sim/managers"
)

var (
	sheep   *bleater.Bleater
	verbose bool
)

func report(name string, r scenario.Result) {
	fmt.Printf("%s: goal reached=%v elapsed=%s\n", name, r.Reached, r.Elapsed)
	for res, n := range r.Store {
		fmt.Printf("  %-20s %d\n", res, n)
	}
}

func main() {
	sheep = bleater.Mk_bleater(1, os.Stderr)
	sheep.Set_prefix("sfcs-sim")
	sheep.Add_child(gizmos.Get_sheep())
	sheep.Add_child(managers.Get_sheep())

	root := &cobra.Command{
		Use:   "sfcs-sim",
		Short: "Smart Factory Control System bidding/negotiation demo",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				sheep.Set_level(2)
				gizmos.Set_bleat_level(2)
				managers.Set_bleat_level(2)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise bleat level")

	run := &cobra.Command{
		Use:   "run",
		Short: "run one of the bundled scenarios",
	}

	scenarios := map[string]func() scenario.Result{
		"s0":       scenario.RunS0,
		"s0-ext":   scenario.RunS0Extension,
		"s1":       scenario.RunS1,
		"s2":       scenario.RunS2,
		"s3":       scenario.RunS3,
		"shutdown": scenario.RunShutdownUnblock,
	}

	for name, fn := range scenarios {
		name, fn := name, fn
		run.AddCommand(&cobra.Command{
			Use:   name,
			Short: fmt.Sprintf("run bundled scenario %s", name),
			Run: func(cmd *cobra.Command, args []string) {
				report(name, fn())
			},
		})
	}

	root.AddCommand(run)
	root.AddCommand(mk_batch_cmd())

	if err := root.Execute(); err != nil {
		sheep.Baa(0, "ERR: %s", err)
		os.Exit(1)
	}
}
