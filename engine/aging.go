package engine

// AgeResult reports what an aging tick did
type AgeResult struct {
	Expired int
	Spawned int
}

// AgeMice runs one aging tick: every live mouse loses one life and expired mice are removed
// Any expiry halves the mouse target (rounded up) and resets the next point value
// No-op unless Running
func (g *Game) AgeMice() AgeResult {
	var res AgeResult
	if g.State.Phase != PhaseRunning {
		return res
	}

	expired := g.Mice.Age()
	res.Expired = len(expired)
	if res.Expired > 0 {
		st := &g.State
		st.MouseTarget = max(1, (st.MouseTarget+1)/2)
		st.Score.NextPoints = 1
		if st.Boosted {
			g.cadenceDirty = true
		}
		g.log.Debug("mice expired", "count", res.Expired, "target", st.MouseTarget)
	}

	res.Spawned = g.topUp()
	return res
}
