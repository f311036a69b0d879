package utils

import (
	"crypto/rand"
	"strconv"
	"time"
)

const refCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns n random characters drawn from the base36 alphabet.
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	for i, b := range buf {
		buf[i] = refCharset[int(b)%len(refCharset)]
	}
	return string(buf)
}

// timestampFragment is the last four characters of the current epoch
// milliseconds rendered in base36.
func timestampFragment() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	return ts
}

// NewOrderRef builds a human-facing order reference: a 4-character timestamp
// fragment plus a 4-character random suffix.
func NewOrderRef() string {
	return timestampFragment() + RandomToken(4)
}

// NewTicketNo builds a complaint ticket number: a 4-character timestamp
// fragment plus a 2-character random suffix.
func NewTicketNo() string {
	return timestampFragment() + RandomToken(2)
}
