package maze

// Reference map dimensions.
const (
	RefCols = 28
	RefRows = 31
)

// RefTunnelRow is the row of the reference map that wraps left to right.
const RefTunnelRow = 14

// Reference spawn and home tiles.
var (
	RefPacmanSpawn = C(13, 23)
	RefHome        = C(13, 14)
	RefGhostSpawns = [4]Coord{
		C(13, 11), // blinky, above the door
		C(13, 14), // pinky
		C(12, 14), // inky
		C(15, 14), // clyde
	}
)

// RefLayout is the 28x31 level. '#' wall, '.' dot, 'o' power pellet,
// ' ' empty path, '-' ghost house door.
var RefLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###--### ##.######",
	"######.## #      # ##.######",
	"      .   #      #   .      ",
	"######.## #      # ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Reference returns a fresh grid built from the reference layout.
func Reference() *Grid {
	return MustNew(RefLayout, RefTunnelRow)
}
