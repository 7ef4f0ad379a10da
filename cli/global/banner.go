//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package global

import (
	"io"

	"github.com/UnifyEM/netid/common"
)

func Banner(w io.Writer) {
	common.Banner(w, Name, Version, Build)
}
