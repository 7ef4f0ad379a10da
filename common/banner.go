//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package common

import (
	"fmt"
	"io"
)

func Banner(w io.Writer, program, version string, build int) {
	_, _ = fmt.Fprintf(w, "%s version %s (build %d)\n", program, version, build)
	_, _ = fmt.Fprintf(w, "Copyright 2024-2026 Tenebris Technologies Inc.\n")
	_, _ = fmt.Fprintf(w, "\nLicense:\n")
	_, _ = fmt.Fprintf(w, "  This software is licenced under the Apache License, Version 2.0.\n")
	_, _ = fmt.Fprintf(w, "  A copy of the license can be found in the LICENSE file.\n")
	_, _ = fmt.Fprintf(w, "\nOpen Source:\n")
	_, _ = fmt.Fprintf(w, "  This software relies upon third-party open source packages including\n")
	_, _ = fmt.Fprintf(w, "  cobra, godotenv, google/uuid, howett.net/plist and the golang.org/x\n")
	_, _ = fmt.Fprintf(w, "  modules. Refer to their repositories for license details.\n")
	_, _ = fmt.Fprintf(w, "\n")
}
