package clock

// Wall is the portable high-resolution wall clock source. It reports
// nanoseconds, so its frequency is always 1e9.
type Wall struct{}

var _ Source = (*Wall)(nil)

// NewWall returns the wall clock source.
func NewWall() *Wall {
	return &Wall{}
}

func (*Wall) Now() uint64 {
	return wallNow()
}

func (*Wall) Frequency() uint64 {
	return 1_000_000_000
}
