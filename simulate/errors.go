// SPDX-License-Identifier: MIT
// Package: gpmap/simulate
//
// errors.go — sentinel errors for landscape parameters.
//
// Error policy:
//   - Validation happens before any state change; a returned error means the
//     landscape is exactly as it was before the call.
//   - Errors from seqspace and gpm surface wrapped, so errors.Is works on
//     their sentinels too (e.g. seqspace.ErrLengthMismatch).

package simulate

import "errors"

var (
	// ErrInvalidRange indicates a roughness range that is not a pair of finite
	// reals with low <= high.
	ErrInvalidRange = errors.New("simulate: invalid roughness range")

	// ErrInvalidFieldStrength indicates a NaN or infinite field strength.
	ErrInvalidFieldStrength = errors.New("simulate: invalid field strength")

	// ErrInvalidSpec indicates a landscape description that cannot be parsed
	// or resolved.
	ErrInvalidSpec = errors.New("simulate: invalid landscape spec")
)

// Method tags used as error prefixes.
const (
	methodNew          = "NewMountFuji"
	methodFromLength   = "NewMountFujiFromLength"
	methodSetField     = "SetFieldStrength"
	methodSetRoughness = "SetRoughness"
	methodParseSpec    = "ParseSpec"
	methodLoadSpec     = "LoadSpec"
	methodSpecBuild    = "Spec.Build"
	methodExport       = "Export"
)
