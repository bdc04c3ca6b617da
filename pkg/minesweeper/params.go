package minesweeper

import "minesweeper/pkg/core"

// Settings bounds offered to players. They are narrower than what Validate
// accepts.
const (
	MinSettingsDimension = 5
	MaxSettingsDimension = 100
	// settingsMineReserve keeps one tile beyond the safe zone unmined.
	settingsMineReserve = 10
)

// Parameters reports the current settings.
func (g *Game) Parameters() core.ParameterSnapshot {
	b := g.board
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", b.Width()),
				core.IntParam("h", "Height", b.Height()),
				core.IntParam("mines", "Mines", b.Mines()),
			},
		},
		{
			Name: "Marking",
			Params: []core.Parameter{
				core.BoolParam("question", "Question marks", b.ModifyMode() == ModifyQuestion),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (g *Game) ParameterControls() []core.ParameterControl {
	b := g.board
	maxMines := b.Width()*b.Height() - settingsMineReserve
	if maxMines < 1 {
		maxMines = 1
	}
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 1, Min: MinSettingsDimension, Max: MaxSettingsDimension},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 1, Min: MinSettingsDimension, Max: MaxSettingsDimension},
		{Key: "mines", Label: "Mines", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxMines},
		{Key: "question", Label: "Question marks", Type: core.ParamTypeBool, Step: 1, Min: 0, Max: 1},
	}
}

// SetIntParameter applies a HUD adjustment. Board changes start a new
// round; shrinking the board lowers the mine count to fit.
func (g *Game) SetIntParameter(key string, value int) bool {
	b := g.board
	w, h, mines := b.Width(), b.Height(), b.Mines()
	switch key {
	case "w", "h":
		if value < MinSettingsDimension || value > MaxSettingsDimension {
			return false
		}
		if key == "w" {
			w = value
		} else {
			h = value
		}
		if limit := w*h - settingsMineReserve; mines > limit {
			mines = limit
		}
	case "mines":
		if value < 1 || value > w*h-settingsMineReserve {
			return false
		}
		mines = value
	case "question":
		switch value {
		case 0:
			g.SetModifyMode(ModifyFlag)
		case 1:
			g.SetModifyMode(ModifyQuestion)
		default:
			return false
		}
		return true
	default:
		return false
	}
	if err := g.ResizeAndReset(w, h, mines); err != nil {
		g.entry().WithError(err).Warn("settings change rejected")
		return false
	}
	return true
}
