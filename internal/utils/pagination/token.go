package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded token from a transaction timestamp and
// its ID. This keeps pagination stable when timestamps collide.
func EncodeToken(timestamp time.Time, transactionID string) string {
	tokenStr := fmt.Sprintf("%s|%s", timestamp.Format(timeFormat), transactionID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a base64 encoded token back into the transaction
// timestamp and ID it was built from.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	timestamp, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}

	return timestamp, parts[1], nil
}
