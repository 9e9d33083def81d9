package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

func toInt64s(v []int) pq.Int64Array {
	res := make(pq.Int64Array, len(v))
	for i, x := range v {
		res[i] = int64(x)
	}
	return res
}

func toInts(v pq.Int64Array) []int {
	res := make([]int, len(v))
	for i, x := range v {
		res[i] = int(x)
	}
	return res
}
