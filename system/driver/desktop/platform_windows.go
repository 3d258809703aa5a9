// Copyright (c) 2026, The GPUWin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import "github.com/gpuwin/shell/system"

// PlatformOS is the [system.Platforms] value for this build.
const PlatformOS = system.Windows
