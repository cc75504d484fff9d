package engine

// lineMotion records where one tile of a line ended up after reduction.
// Indices are line-local; the move engine maps them to board coordinates.
// Value is the tile's value before any merge.
type lineMotion struct {
	From   int
	To     int
	Value  int
	Merged bool
}

// reduceLine compacts and merges a single line toward index 0.
//
// Non-zero values keep their order. When two consecutive non-zero values
// are equal they merge into one tile of double value; a merged result is
// not eligible to merge again in the same pass, so [2,2,2,2] reduces to
// [4,4,0,0]. Every source tile gets exactly one motion record; the two
// tiles of a merged pair share the same destination slot with Merged set.
// gain is the sum of all newly created merge values.
func reduceLine(line [Size]int) (values [Size]int, motions []lineMotion, gain int) {
	// Non-zero entries tagged with their original index.
	var src [Size]int
	n := 0
	for i := range Size {
		if line[i] != 0 {
			src[n] = i
			n++
		}
	}

	write := 0
	for i := 0; i < n; i++ {
		v := line[src[i]]
		if i+1 < n && line[src[i+1]] == v {
			values[write] = v * 2
			gain += v * 2
			motions = append(motions,
				lineMotion{From: src[i], To: write, Value: v, Merged: true},
				lineMotion{From: src[i+1], To: write, Value: v, Merged: true},
			)
			i++ // skip the partner tile
		} else {
			values[write] = v
			motions = append(motions, lineMotion{From: src[i], To: write, Value: v})
		}
		write++
	}

	return values, motions, gain
}
