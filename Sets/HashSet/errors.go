package HashSet

import "fmt"

type InvalidLoadFactorError struct {
	LoadFactor float64
}

func (e InvalidLoadFactorError) Error() string {
	return fmt.Sprintf("HashSet: load factor %g is outside (0, 1]", e.LoadFactor)
}

type NilHasherError struct{}

func (NilHasherError) Error() string {
	return "HashSet: nil Hasher"
}
