package syncer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/solederva/feedsync/internal/platform/models"
)

// ContentHash fingerprints the fields that decide whether a remote update
// is needed: price, quantity and the ordered (code, price, quantity)
// variant tuples. Category, description and image changes deliberately do
// not change the hash. The hash is a pure function of its inputs and
// stable across process restarts.
func ContentHash(product *models.CatalogProduct) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(product.Price, 'f', -1, 64))
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(product.Quantity))

	for _, variant := range product.Variants {
		fmt.Fprintf(&sb, "|%s,%s,%d", variant.Code, variant.Price, variant.Quantity)
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}
