package generator

import "github.com/katalvlaran/hexlace/level"

// mirror materializes the full solved board from the canvas: every tile takes
// its representative's content carried by the operation that maps the
// representative onto it. Seams need no re-check here; the supervisor
// validates edge matching once on the whole candidate.
func mirror(cv *canvas, lv *level.Level) {
	for i := range lv.Tiles {
		p, _ := cv.view(lv.Tiles[i].Coord)
		lv.Tiles[i].Solved = p
		lv.Tiles[i].Current = p
	}
}
