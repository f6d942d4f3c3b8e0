// vi: sw=4 ts=4:

/*

	Mnemonic:	batch
	Abstract:	The "batch" subcommand: build an ad-hoc topology from flags
				instead of a bundled scenario. The store and capability
				flags are parsed here with the same token/clike idiom that
				scenario.Parse_batch_spec uses for the submission flag.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package main

import (
	"fmt"

	"github.com/att/gopkgs/clike"
	"github.com/att/gopkgs/token"
	"github.com/spf13/cobra"

	"github.com/sunfl0w/SFCS-Sim/internal/scenario"
)

func parse_store_spec(spec string) (map[string]int, error) {
	_, entries := token.Tokenise_qpopulated(spec, ",")

	out := make(map[string]int, len(entries))
	for _, e := range entries {
		_, kv := token.Tokenise_qpopulated(e, "=")
		if len(kv) != 2 {
			return nil, fmt.Errorf("batch: malformed store entry %q, expected name=count", e)
		}
		out[kv[0]] = int(clike.Atoll(kv[1]))
	}

	return out, nil
}

func parse_caps(spec string) []string {
	_, caps := token.Tokenise_qpopulated(spec, ",")
	return caps
}

func mk_batch_cmd() *cobra.Command {
	var store_spec, caps_spec, submit_spec string
	var agent_count int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "build an ad-hoc store/agent topology and submit a batch of tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := parse_store_spec(store_spec)
			if err != nil {
				return err
			}

			entries, err := scenario.Parse_batch_spec(submit_spec)
			if err != nil {
				return err
			}

			r := scenario.RunBatch(initial, agent_count, parse_caps(caps_spec), entries)
			report("batch", r)
			return nil
		},
	}

	cmd.Flags().StringVar(&store_spec, "store", "iron_plate=200,copper_plate=50", "initial store, name=count,name=count,...")
	cmd.Flags().StringVar(&caps_spec, "caps", "IGW_Task,CC_Task", "capability tags every agent advertises, comma separated")
	cmd.Flags().StringVar(&submit_spec, "submit", "100xIGW_Task", "batch submission, countxRecipeName,countxRecipeName,...")
	cmd.Flags().IntVar(&agent_count, "agents", 10, "number of resource agents")

	return cmd
}
