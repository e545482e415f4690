package near

import "time"

const (
	actionTransfer = "Transfer"
	// transferFee is the flat fee attributed to native transfers, in yoctoNEAR.
	transferFee = "830000000000000000000"

	defaultHTTPTimeout = 30 * time.Second
	// maxResponseSize caps a single JSON-RPC response body.
	maxResponseSize = 256 << 20
)
