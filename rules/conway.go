package rules

/*
Next applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with exactly 2 or 3 live neighbors; a dead cell becomes
alive with exactly 3. Every other neighbor count yields a dead cell.
*/
func Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
