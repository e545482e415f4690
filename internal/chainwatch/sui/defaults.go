package sui

const (
	// coinType is the native SUI coin type used in balance changes.
	coinType = "0x2::sui::SUI"
	// pageLimit is the page size for suix_queryTransactionBlocks.
	pageLimit = 50
	// maxPages bounds cursor pagination within a single checkpoint.
	maxPages = 1000
)
