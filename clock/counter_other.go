//go:build !amd64 && !arm64

package clock

func readCounter() uint64 {
	return 0
}

func detect() CounterInfo {
	return CounterInfo{}
}
