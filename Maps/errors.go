package Maps

import "fmt"

type InvalidLoadFactorError struct {
	LoadFactor float64
}

func (e InvalidLoadFactorError) Error() string {
	return fmt.Sprintf("Maps: load factor %g is outside (0, 1]", e.LoadFactor)
}

type NilHasherError struct{}

func (NilHasherError) Error() string {
	return "Maps: nil Hasher"
}
