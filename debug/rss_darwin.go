//go:build darwin

package debug

func maxRSSBytes(v uint64) uint64 { return v }
