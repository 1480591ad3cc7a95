package scene

// Hit returns the action of the topmost component that contains (x,y) and carries one.
// Components without an action never block those beneath them.
func Hit(x, y float64, list List) (Action, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		c := list[i]
		a := c.Click()
		if a == nil || !c.Contains(x, y) {
			continue
		}
		return a, true
	}
	return nil, false
}
