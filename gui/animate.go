package gui

// AnimateBool eases from 0 to 1 (or back) over Style.AnimationTime as
// target changes, and returns the current value. The first call for an id
// returns the target value without animating. While the value is moving
// another frame is requested.
func (ctx *Context) AnimateBool(id ID, target bool) float32 {
	goal := float32(0)
	if target {
		goal = 1
	}

	key := id.With("animate_bool")
	st := GetState(ctx, key, animState{Value: goal, Target: target})
	st.Target = target

	if d := ctx.style.AnimationTime; d <= 0 {
		st.Value = goal
	} else if st.Value != goal {
		step := ctx.DeltaTime / d
		if st.Value < goal {
			st.Value = minf(goal, st.Value+step)
		} else {
			st.Value = maxf(goal, st.Value-step)
		}
		if st.Value != goal {
			ctx.RequestRedraw()
		}
	}

	SetState(ctx, key, st)
	return st.Value
}
