package docs

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product types served by the catalog.
const (
	ProductGPU         = "GPU"
	ProductTransceiver = "TRANSCEIVER"
	ProductCabling     = "CABLING"
	ProductNetworkCard = "NETWORK_CARD"
	ProductSoftware    = "SOFTWARE"
)

// ProductTypes lists every valid product type, in the order reported to clients.
var ProductTypes = []string{ProductGPU, ProductTransceiver, ProductCabling, ProductNetworkCard, ProductSoftware}

// NormalizeProductType uppercases s and reports whether it names a known
// product type. Filters and stored values always use the uppercase form.
func NormalizeProductType(s string) (string, bool) {
	up := strings.ToUpper(s)
	for _, t := range ProductTypes {
		if up == t {
			return up, true
		}
	}
	return up, false
}

// Document is one scraped documentation page in the catalog. URL is the
// natural key: ingestion upserts on it, so a page keeps its ID across runs.
type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductType string             `bson:"product_type" json:"product_type"`
	Title       string             `bson:"title" json:"title"`
	Content     string             `bson:"content" json:"content"`
	URL         string             `bson:"url" json:"url"`
	LastUpdated time.Time          `bson:"last_updated" json:"last_updated"`
}

// TypeCount is one product type's document count.
type TypeCount struct {
	ProductType string `bson:"_id" json:"product_type"`
	Count       int64  `bson:"count" json:"count"`
}

// TypeCounts preserves the store's descending-count order; a plain map would
// lose it when marshaled.
type TypeCounts []TypeCount

// MarshalJSON emits a JSON object whose keys appear in slice order.
func (tc TypeCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range tc {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.ProductType)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(c.Count, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Stats summarizes the catalog for GET /api/docs/stats.
type Stats struct {
	TotalDocuments  int64      `json:"total_documents"`
	DocumentsByType TypeCounts `json:"documents_by_type"`
	LastUpdated     *time.Time `json:"last_updated"`
}
