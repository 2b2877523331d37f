package ports

import "pspec/internal/types"

type SpecFilePort interface {
	LoadSpec(path string) (types.SpecFile, error)
}
