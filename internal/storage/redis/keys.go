package redis

import (
	"fmt"

	"github.com/mcoot/wordsland/internal/model"
)

// Key prefix for all wordsland data
const keyPrefix = "wordsland"

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// roundHistoryKey returns the Redis key for the LIST of round summaries of a session
func roundHistoryKey(sessionID model.SessionID) string {
	return fmt.Sprintf("%s:rounds:%s", keyPrefix, sessionID)
}
