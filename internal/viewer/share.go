package viewer

import "github.com/atotto/clipboard"

// copyToClipboard is a seam for tests; the default writes to the system
// clipboard.
var copyToClipboard = clipboard.WriteAll
