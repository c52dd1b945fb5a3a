package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountDistinct returns the number of distinct items across all slices
func CountDistinct[T comparable](slices ...[]T) int {
	seen := make(map[T]struct{})
	for _, slice := range slices {
		for _, item := range slice {
			seen[item] = struct{}{}
		}
	}
	return len(seen)
}
