package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the world dimensions, tick counter and material census.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.Census()
	counts := make([]core.Parameter, 0, len(Paintable()))
	for _, m := range Paintable() {
		counts = append(counts, intParam("count_"+m.String(), m.String(), census[m]))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cur.W),
				intParam("h", "Height", w.cur.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				{
					Key:   "tick",
					Label: "Tick",
					Type:  core.ParamTypeInt,
					Value: strconv.FormatUint(w.tick, 10),
				},
			},
		},
		{
			Name:   "Census",
			Params: counts,
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
