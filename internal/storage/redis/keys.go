package redis

import (
	"fmt"

	"github.com/nexproctor/proctor-server/internal/model"
)

// Key prefix for all proctoring data
const keyPrefix = "nexproctor"

// accountKey returns the Redis key for a ProctorAccount
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// codeKey returns the Redis key for an AccessCode
func codeKey(value model.CodeValue) string {
	return fmt.Sprintf("%s:code:%s", keyPrefix, value)
}

// codeIndexKey returns the Redis key for the SET of all code values
func codeIndexKey() string {
	return fmt.Sprintf("%s:idx:codes", keyPrefix)
}

// reportKey returns the Redis key for an ExamReport
func reportKey(id model.ReportID) string {
	return fmt.Sprintf("%s:report:%s", keyPrefix, id)
}

// reportOrderKey returns the Redis key for the LIST of report ids in
// submission order
func reportOrderKey() string {
	return fmt.Sprintf("%s:idx:reports", keyPrefix)
}
