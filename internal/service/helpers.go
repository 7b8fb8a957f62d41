package service

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// pageBounds turns a 1-based page into limit and offset, clamping bad input
func pageBounds(page, pageSize int) (limit, offset, p, size int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize, page, pageSize
}

// randomString draws n characters uniformly from alphabet using crypto/rand
func randomString(alphabet string, n int) (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}
