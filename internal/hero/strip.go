package hero

import "strings"

var levels = []rune("▁▂▃▄▅▆▇█")

// Strip renders bubble heights as one block character per bubble, scaled
// against the bob amplitude around each bubble's rest height.
func (f Frame) Strip(scene Scene) string {
	var b strings.Builder
	for i, bf := range f.Bubbles {
		rest := 0.0
		if i < len(scene.Bubbles) {
			rest = scene.Bubbles[i].Position.Y
		}
		b.WriteRune(levelFor(bf.Position.Y - rest))
	}
	return b.String()
}

func levelFor(offset float64) rune {
	norm := (offset + bobAmplitude) / (2 * bobAmplitude)
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	return levels[int(norm*float64(len(levels)-1)+0.5)]
}
