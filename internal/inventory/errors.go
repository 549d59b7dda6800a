package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: hatalı tarih, bilinmeyen lokasyon, eksik alan
	ErrValidation = errors.New("validation error")
	// ErrNotFound: olmayan ünite
	ErrNotFound = errors.New("not found")
	// ErrStore: veritabanı hatası
	ErrStore = errors.New("store failure")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
