// vi: sw=4 ts=4:

/*

	Mnemonic:	globals
	Abstract:	Package level initialisation, constants and the mailbox message
				types used by the bidding manager's ipc.Chmsg request loop.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package managers

import (
	"os"

	"github.com/att/gopkgs/bleater"
)

// Message types carried on a BiddingManager's mailbox (see bidding_manager.go).
const (
	REQ_SCHEDULE = iota // req_data is *gizmos.Task; award it to a capable, idle member
)

var (
	mgr_sheep *bleater.Bleater // sheep that managers bleat through
)

func init() {
	mgr_sheep = bleater.Mk_bleater(0, os.Stderr)
	mgr_sheep.Set_prefix("managers")
}

/*
	Get_sheep returns the package's sheep so main can attach it to the master
	sheep and control the bleat level for the whole managers package.
*/
func Get_sheep() *bleater.Bleater {
	return mgr_sheep
}

/*
	Set_bleat_level adjusts the bleat level for the managers package.
*/
func Set_bleat_level(v uint) {
	mgr_sheep.Set_level(v)
}
