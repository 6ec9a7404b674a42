// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the padding kernels.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - One loop nest per rank, 1 to 6
//   - Float32, Float64, Float16, Int32, Int64 and Uint8 support
//   - Row-parallel execution, tunable through NewWithConfig
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/crop/backend/cpu"
//	    "github.com/born-ml/crop/kernel"
//	)
//
//	func main() {
//	    ctx := kernel.NewContext(cpu.New())
//	    // ... bind Out@GRAD, declare X@GRAD, set "offsets" ...
//	    err := kernel.CropGrad(ctx)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each padding call is isolated
// and does not share mutable state.
package cpu
