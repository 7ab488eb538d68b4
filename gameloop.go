package tjs

import "time"

// LoopData describes the frame being processed.
type LoopData struct {
	Time    time.Time
	Frame   int64
	Delta   float64
	Elapsed float64
}
