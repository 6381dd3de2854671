package ingest

import "github.com/TPFLegionaire/Nvidia-docs-MCP-server/internal/modules/docs"

// baseURLs maps each product type to the documentation page scraped for it.
// Only base pages are ingested; crawling linked pages is out of scope.
var baseURLs = map[string]string{
	docs.ProductGPU:         "https://www.nvidia.com/en-us/data-center/gpu/",
	docs.ProductTransceiver: "https://www.nvidia.com/en-us/networking/ethernet-adapters/transceivers/",
	docs.ProductCabling:     "https://www.nvidia.com/en-us/networking/ethernet-adapters/cables/",
	docs.ProductNetworkCard: "https://www.nvidia.com/en-us/networking/ethernet-adapters/",
	docs.ProductSoftware:    "https://developer.nvidia.com/",
}
