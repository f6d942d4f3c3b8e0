// vi: sw=4 ts=4:

/*

	Mnemonic:	batchspec
	Abstract:	Parses the CLI's free-form batch submission strings, e.g.
				"100xIGW_Task,40xEC_Task,20xAC_Task", the same shape the
				teacher's http_api.go parses request bodies with: split on
				the outer separator with token.Tokenise_qpopulated, then
				pull the leading integer off each entry with clike.Atoll.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package scenario

import (
	"fmt"
	"strings"

	"github.com/att/gopkgs/clike"
	"github.com/att/gopkgs/token"

	"github.com/sunfl0w/SFCS-Sim/gizmos"
)

/*
	Batch_entry is one "countxRecipeName" submission request.
*/
type Batch_entry struct {
	Count int
	Name  string
}

/*
	Parse_batch_spec splits spec on commas, and each entry on "x" into a
	count and a recipe name, e.g. "100xIGW_Task,40xEC_Task". Unknown recipe
	names are rejected rather than silently ignored -- a scenario submitted
	with a typo is a misconfiguration the CLI should refuse, not swallow.
*/
func Parse_batch_spec(spec string) ([]Batch_entry, error) {
	_, entries := token.Tokenise_qpopulated(spec, ",")

	out := make([]Batch_entry, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}

		idx := strings.IndexByte(e, 'x')
		if idx <= 0 {
			return nil, fmt.Errorf("batchspec: malformed entry %q, expected countxRecipeName", e)
		}

		count := int(clike.Atoll(e[:idx]))
		if count <= 0 {
			return nil, fmt.Errorf("batchspec: bad count in %q", e)
		}

		name := e[idx+1:]
		if gizmos.Mk_task_by_name(name) == nil {
			return nil, fmt.Errorf("batchspec: unknown recipe %q", name)
		}

		out = append(out, Batch_entry{Count: count, Name: name})
	}

	return out, nil
}
