// vi: sw=4 ts=4:

/*

	Mnemonic:	init
	Abstract:	Package-level bleater for gizmos; callers attach it to the
				master sheep via Get_sheep and raise its level via
				Set_bleat_level.
	Date:		31 July 2026
	Author:		E. Scott Daniels
*/

package gizmos

import (
	"os"

	"github.com/att/gopkgs/bleater"
)

var obj_sheep *bleater.Bleater

func init() {
	obj_sheep = bleater.Mk_bleater(0, os.Stderr)
	obj_sheep.Set_prefix("gizmos")
}

func Get_sheep() *bleater.Bleater {
	return obj_sheep
}

func Set_bleat_level(v uint) {
	obj_sheep.Set_level(v)
}
