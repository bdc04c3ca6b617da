package minesweeper

import "minesweeper/pkg/core"

func init() {
	core.RegisterPreset("beginner", core.Preset{Size: core.Size{W: 9, H: 9}, Mines: 10})
	core.RegisterPreset("intermediate", core.Preset{Size: core.Size{W: 16, H: 16}, Mines: 40})
	core.RegisterPreset("expert", core.Preset{Size: core.Size{W: 30, H: 16}, Mines: 99})
}
