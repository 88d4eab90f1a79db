// Package daily chooses the secret for `play` when no answer is given. The
// choice depends only on the UTC day and a salt, so two runs on the same day
// with the same salt play the same game.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"
)

// ErrNoAnswers is returned when there is nothing to pick from.
var ErrNoAnswers = errors.New("daily: answers list is empty")

// DateKey is the UTC calendar day of t, formatted YYYY-MM-DD. It is also
// what `play` logs so a run can be reproduced.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// seed derives 64 bits from the salted day key.
func seed(date time.Time, salt string) uint64 {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}

// WordIndex maps date into [0, n). n <= 0 gives 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(seed(date, salt) % uint64(n))
}

// Pick returns the answer scheduled for date.
func Pick(date time.Time, salt string, answers []string) (string, error) {
	if len(answers) == 0 {
		return "", ErrNoAnswers
	}
	return answers[WordIndex(date, salt, len(answers))], nil
}
