package utils

import "errors"

var ErrValueNotPresent = errors.New("value is not present")

func Must[T any](obj T, err error) T {
	if err != nil {
		panic(err)
	}
	return obj
}

func MustGet[T any](obj T, present bool) T {
	if !present {
		panic(ErrValueNotPresent)
	}
	return obj
}
