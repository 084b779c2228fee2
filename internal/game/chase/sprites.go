package chase

// Sprite bitmaps: 6 rows, 8 pixels wide, one byte per row with the most
// significant bit leftmost. The two player frames differ only in the feet
// row, which gives the walk animation.

var playerFrameA = []byte{
	0b00111100,
	0b01111110,
	0b11011011,
	0b01111110,
	0b00100100,
	0b01000010,
}

var playerFrameB = []byte{
	0b00111100,
	0b01111110,
	0b11011011,
	0b01111110,
	0b00100100,
	0b00100100,
}

var targetSprite = []byte{
	0b00111100,
	0b01000010,
	0b10011001,
	0b10011001,
	0b01000010,
	0b00111100,
}
