package rules

import "dematkyc/internal/nomination/models"

// TotalShare is the sum every nomination must reach.
const TotalShare = 100

// SplitShares partitions TotalShare into count parts. The first
// TotalShare%count parts get one extra unit.
func SplitShares(count int) []int {
	if count <= 0 {
		return nil
	}
	base := TotalShare / count
	remainder := TotalShare % count
	shares := make([]int, count)
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}

// Redistribute overwrites every nominee's share with an equal split, in
// list order. Only nominee-count changes call it.
func Redistribute(nominees []models.Nominee) {
	for i, share := range SplitShares(len(nominees)) {
		nominees[i].PercentageShares = share
	}
}

// SumShares adds up the shares as entered.
func SumShares(nominees []models.Nominee) int {
	total := 0
	for _, n := range nominees {
		total += n.PercentageShares
	}
	return total
}

// RemainingShare is what is left to allocate, clamped at zero.
func RemainingShare(nominees []models.Nominee) int {
	return max(0, TotalShare-SumShares(nominees))
}
