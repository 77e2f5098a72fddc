// internal/domain/asset.go
package domain

// DefaultAssetKeyword is the reserved keyword of the entry returned when no
// other keyword matches.
const DefaultAssetKeyword = "default"

// AssetEntry maps a goal keyword to a motivational image.
type AssetEntry struct {
	Keyword string `json:"keyword"`
	URL     string `json:"url"`
}

// IsDefault reports whether e is the reserved fallback entry.
func (e AssetEntry) IsDefault() bool {
	return e.Keyword == DefaultAssetKeyword
}
