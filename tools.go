//go:build tools

// Package hearing_hub pins mockgen, run by the go:generate header of contract/contract.go.
package hearing_hub

import (
	_ "go.uber.org/mock/mockgen"
)
