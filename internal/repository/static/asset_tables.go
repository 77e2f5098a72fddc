package static

import (
	"alcyxob/fitness-coach/internal/domain"
)

// assetTable is in match-priority order. A prompt mentioning two goals gets
// the image of whichever comes first here, so reordering changes behavior.
var assetTable = []domain.AssetEntry{
	{Keyword: "weight loss", URL: "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=800&q=80"},
	{Keyword: "muscle gain", URL: "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=800&q=80"},
	{Keyword: "general fitness", URL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800&q=80"},
	{Keyword: "endurance", URL: "https://images.unsplash.com/photo-1476480862126-209bfaa8edc8?w=800&q=80"},
	{Keyword: "flexibility", URL: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=800&q=80"},
	{Keyword: "strength", URL: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800&q=80"},
	{Keyword: domain.DefaultAssetKeyword, URL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800&q=80"},
}
