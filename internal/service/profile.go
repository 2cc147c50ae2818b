package service

import "fmt"

// AffinityMask converts 0-based CPU ids into the bit mask taskset
// expects. Duplicates are harmless.
func AffinityMask(cpus []int) (uint64, error) {
	var mask uint64
	for _, cpu := range cpus {
		if cpu < 0 || cpu > 63 {
			return 0, fmt.Errorf("cpu affinity id %d out of range [0, 63]", cpu)
		}
		mask = setBit(mask, uint(cpu), true)
	}
	return mask, nil
}

func setBit(mask uint64, index uint, value bool) uint64 {
	bit := uint64(1) << index
	mask &^= bit
	if value {
		mask |= bit
	}
	return mask
}
