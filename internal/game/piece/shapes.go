package piece

import (
	"image/color"
	"math/rand"
)

// The seven flat shapes, each a horizontal slice over x (columns) and z
// (rows).
var Shapes = []Shape{
	{
		Type:   "I",
		Color:  color.RGBA{R: 0x00, G: 0xC8, B: 0xD4, A: 0xFF},
		Matrix: [][]bool{{true, true, true, true}},
	},
	{
		Type:  "O",
		Color: color.RGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF},
		Matrix: [][]bool{
			{true, true},
			{true, true},
		},
	},
	{
		Type:  "T",
		Color: color.RGBA{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
		Matrix: [][]bool{
			{true, true, true},
			{false, true, false},
		},
	},
	{
		Type:  "S",
		Color: color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
		Matrix: [][]bool{
			{false, true, true},
			{true, true, false},
		},
	},
	{
		Type:  "Z",
		Color: color.RGBA{R: 0xE5, G: 0x3E, B: 0x3E, A: 0xFF},
		Matrix: [][]bool{
			{true, true, false},
			{false, true, true},
		},
	},
	{
		Type:  "L",
		Color: color.RGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
		Matrix: [][]bool{
			{true, false},
			{true, false},
			{true, true},
		},
	},
	{
		Type:  "J",
		Color: color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF},
		Matrix: [][]bool{
			{false, true},
			{false, true},
			{true, true},
		},
	},
}

// Bag deals shapes with the 7-bag rule: every shape appears exactly once
// before any repeats.
type Bag struct {
	rng   *rand.Rand
	queue []Shape
}

// NewBag creates a bag seeded for reproducible deals.
func NewBag(seed int64) *Bag {
	return &Bag{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next shape, refilling and reshuffling when the bag runs
// out.
func (b *Bag) Next() Shape {
	if len(b.queue) == 0 {
		b.queue = append(b.queue, Shapes...)
		b.rng.Shuffle(len(b.queue), func(i, j int) {
			b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
		})
	}
	s := b.queue[0]
	b.queue = b.queue[1:]
	return s
}
