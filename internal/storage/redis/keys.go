package redis

import (
	"fmt"

	"github.com/fillword/fillwordgame-go/internal/model"
)

// Key prefix for all fillword data
const keyPrefix = "fwgame"

// roundKey returns the Redis key for a Round
func roundKey(id model.RoundID) string {
	return fmt.Sprintf("%s:round:%s", keyPrefix, id)
}

// wordPoolKey returns the Redis key for a language's word pool set
func wordPoolKey(language string) string {
	return fmt.Sprintf("%s:words:%s", keyPrefix, language)
}
