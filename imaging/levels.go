package imaging

// RemapChannel lifts a single channel value towards white. An offset of 0
// leaves c as is, 255 turns everything white. The product is computed in
// float32 and truncated, so output is bit for bit reproducible.
func RemapChannel(c, offset uint8) uint8 {
	factor := float32(255-offset) / 255
	return 255 - uint8(float32(255-c)*factor)
}

// RemapLevels applies RemapChannel with the same offset to every channel of
// every pixel of img, in place.
func RemapLevels(img *RGB, offset uint8) {
	if offset == 0 {
		return
	}

	var table [256]uint8
	for c := range table {
		table[c] = RemapChannel(uint8(c), offset)
	}

	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		row := img.Row(y)
		for i, c := range row {
			row[i] = table[c]
		}
	}
}
